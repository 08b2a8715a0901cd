// Package config defines service configuration structures and loading hooks.
package config

import (
	"context"
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RefreshQueueSize bounds the in-memory aggregate refresh queue.
	RefreshQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of refresh workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the refresh coalescing cache.
	DedupeSize int `koanf:"dedupe_size"`

	// Default question counts for assessments without a question config.
	DefaultMCQCount         int `koanf:"default_mcq_count"`
	DefaultDescriptiveCount int `koanf:"default_descriptive_count"`
	DefaultDSACount         int `koanf:"default_dsa_count"`

	// AllowedOrigins lists CORS origins permitted on /api routes.
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:                "info",
		Addr:                    ":8080",
		RefreshQueueSize:        10_000,
		WorkerCount:             runtime.NumCPU() * 2,
		DedupeSize:              50_000,
		DefaultMCQCount:         5,
		DefaultDescriptiveCount: 3,
		DefaultDSACount:         2,
		AllowedOrigins:          []string{"http://localhost:3000"},
	}
}

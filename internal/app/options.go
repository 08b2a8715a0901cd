// Package service wires the store, scoring core and refresh workers
// together and implements the dependencies required by the HTTP API.
package service

import (
	"github.com/iitg/jobassessment/internal/domain/questiongen"
	"github.com/iitg/jobassessment/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of refresh worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the capacity of the refresh queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the refresh coalescing cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithDefaultQuestionCounts sets the fallback question counts used for
// assessments without a question configuration.
func WithDefaultQuestionCounts(mcq, descriptive, dsa int) Option {
	return func(s *Service) {
		s.genOpts = append(s.genOpts, questiongen.WithDefaultCounts(mcq, descriptive, dsa))
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

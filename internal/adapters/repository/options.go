// Package repository defines the entity store interface and errors.
package repository

import "time"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithIDGenerator sets the function used to mint entity ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *MemStore) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithClock sets the function used to stamp creation times.
func WithClock(now func() time.Time) Option {
	return func(s *MemStore) {
		if now != nil {
			s.now = now
		}
	}
}

// Package dedupe tracks pending aggregate refreshes so that repeated
// writes against the same assessment collapse into a single queued
// refresh.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"
)

// Deduper records pending ids so refreshes can be coalesced.
type Deduper interface {
	// SeenAndRecord atomically checks if id is pending and records it
	// if not. Returns true if id was already pending, false if it was
	// newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an id from the pending set. Workers call this
	// after a refresh completes (or fails) so the next write can queue
	// a fresh one.
	Unrecord(ctx context.Context, id string)

	Size() int64
}

// node is a single entry in the eviction list.
type node struct {
	id   string
	next *node
}

// inMemoryDeduper implements Deduper with an in-memory pending set.
// In bounded mode (maxSize > 0) the oldest entry is evicted once the
// set is full; evicting a pending id only costs one redundant refresh,
// so a bounded set is safe.
type inMemoryDeduper struct {
	mu      sync.Mutex
	pending map[string]*node
	head    *node
	maxSize int // 0 or negative means unbounded
	size    atomic.Int64
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: 50000,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.pending = make(map[string]*node)

	return d
}

// SeenAndRecord atomically checks if id is pending and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.pending[id]; exists {
		return true
	}

	if d.maxSize > 0 {
		if len(d.pending) >= d.maxSize {
			d.evictOldest()
		}
		n := &node{id: id, next: d.head}
		d.head = n
		d.pending[id] = n
	} else {
		d.pending[id] = nil
	}
	d.size.Add(1)
	return false
}

// Unrecord removes an id from the pending set.
func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, exists := d.pending[id]
	if !exists {
		return
	}
	delete(d.pending, id)
	d.size.Add(-1)

	if d.maxSize <= 0 || n == nil {
		return
	}

	// Unlink from the eviction list.
	if d.head == n {
		d.head = n.next
		return
	}
	for current := d.head; current != nil; current = current.next {
		if current.next == n {
			current.next = n.next
			return
		}
	}
}

// evictOldest drops the tail of the eviction list. Caller holds d.mu.
func (d *inMemoryDeduper) evictOldest() {
	if d.head == nil {
		return
	}

	if d.head.next == nil {
		delete(d.pending, d.head.id)
		d.head = nil
		d.size.Add(-1)
		return
	}

	var prev *node
	current := d.head
	for current.next != nil {
		prev = current
		current = current.next
	}
	prev.next = nil
	delete(d.pending, current.id)
	d.size.Add(-1)
}

// Size returns the current number of pending ids.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

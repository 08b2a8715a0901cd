// Package worker runs the background refresh of cached assessment
// aggregates. Workers drain the refresh queue and recompute the average
// submission score for each affected assessment.
package worker

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"time"

	"github.com/iitg/jobassessment/internal/adapters/mq/queue"
	"github.com/iitg/jobassessment/internal/domain/model"
	"github.com/iitg/jobassessment/pkg/logger"
	"github.com/iitg/jobassessment/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
)

// Event abstracts what workers read off the queue.
type Event = queue.Event

// Aggregator reads the submissions backing an assessment's aggregates.
type Aggregator interface {
	ListSubmissions(ctx context.Context, assessmentID string) ([]model.Submission, error)
	SetAvgScore(ctx context.Context, assessmentID string, avg int) error
}

// Coalescer releases a pending refresh so later writes can enqueue again.
type Coalescer interface {
	Unrecord(ctx context.Context, assessmentID string)
}

// Queue defines how workers receive events.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Event
}

// Worker processes refresh events until stopped.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for processing refresh events.
type InMemoryWorker struct {
	queue     Queue
	store     Aggregator
	coalescer Coalescer
	name      string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(queue Queue, store Aggregator, coalescer Coalescer, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:     queue,
		store:     store,
		coalescer: coalescer,
		name:      "worker",
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
		logger:    logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer func() {
		close(w.done)
	}()

	eventChan := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case event, ok := <-eventChan:
			if !ok {
				// Channel closed, worker should stop
				return
			}

			if err := w.processEvent(ctx, event); err != nil {
				w.logger.Error(ctx, "error processing refresh", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processEvent recomputes the cached average for one assessment.
// The coalescer entry is released first so a write that lands during
// recomputation can enqueue a fresh refresh.
func (w *InMemoryWorker) processEvent(ctx context.Context, event Event) error {
	if w.coalescer != nil {
		w.coalescer.Unrecord(ctx, event.AssessmentID)
	}

	submissions, err := w.store.ListSubmissions(ctx, event.AssessmentID)
	if err != nil {
		metrics.RecordRefreshError()
		return fmt.Errorf("list submissions for %s: %w", event.AssessmentID, err)
	}

	avg := 0
	if len(submissions) > 0 {
		sum := 0
		for _, s := range submissions {
			sum += s.Score
		}
		avg = int(math.Round(float64(sum) / float64(len(submissions))))
	}

	if err := w.store.SetAvgScore(ctx, event.AssessmentID, avg); err != nil {
		metrics.RecordRefreshError()
		return fmt.Errorf("set avg score for %s: %w", event.AssessmentID, err)
	}

	metrics.RecordRefreshProcessed()
	return nil
}

// Pool manages multiple workers.
type Pool struct {
	workers []*InMemoryWorker
	queue   Queue

	// Shutdown control
	shutdown chan struct{}

	// Logging
	logger logger.Logger
}

// NewPool creates a new worker pool.
func NewPool(workerCount int, queue Queue, store Aggregator, coalescer Coalescer) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers:  make([]*InMemoryWorker, workerCount),
		queue:    queue,
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewInMemoryWorker(
			queue,
			store,
			coalescer,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, worker := range p.workers {
		go worker.Run(ctx)
	}
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	close(p.shutdown)

	for _, worker := range p.workers {
		select {
		case <-worker.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}

// Shutdown gracefully shuts down the entire worker pool.
func (p *Pool) Shutdown(ctx context.Context) error {
	// Close the queue first so workers drain remaining events and exit.
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, worker := range p.workers {
		select {
		case <-worker.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}

	return nil
}

// Package async runs extractions from a bounded queue with a fixed worker
// pool. Each job gets its own timeout-scoped context, and since the pipeline
// holds no mutable state across calls, workers never share capability state.
package async

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is one document waiting for extraction.
type Job struct {
	Path string
	Mode string
}

// Handler processes one job end to end (pipeline run plus persistence).
type Handler func(ctx context.Context, job Job) error

type Queue struct {
	handler Handler
	logger  *zap.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(handler Handler, logger *zap.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = zap.NewNop()
	}
	q := &Queue{
		handler: handler,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", zap.Int("worker_id", workerID))

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.handler(ctx, job)
					cancel()

					if err != nil {
						q.logger.Error("extraction failed",
							zap.Int("worker_id", workerID),
							zap.String("path", job.Path),
							zap.Error(err),
						)
					} else {
						q.logger.Info("extraction done",
							zap.Int("worker_id", workerID),
							zap.String("path", job.Path),
						)
					}
				}

				q.logger.Info("worker stopped", zap.Int("worker_id", workerID))
			}(i + 1)
		}
	})
}

// Enqueue adds a job, blocking when the queue is full. After Shutdown it
// drops the job and returns.
func (q *Queue) Enqueue(job Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", zap.String("path", job.Path))
		return
	}

	select {
	case q.ch <- job:
		q.logger.Info("queued for extraction", zap.String("path", job.Path), zap.String("mode", job.Mode))
	default:
		q.logger.Warn("queue full, applying backpressure", zap.String("path", job.Path))
		q.ch <- job
	}
}

// Shutdown closes the queue and waits for the workers to drain it, bounded by
// ctx.
func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrQueueFull is returned when the buffer is saturated; callers surface it
// as a retryable condition.
var ErrQueueFull = errors.New("import queue full")

// ErrShuttingDown is returned for enqueues after Shutdown began.
var ErrShuttingDown = errors.New("import queue shutting down")

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.size = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// ProcessorQueue fans queued runs out to a fixed worker pool.
type ProcessorQueue struct {
	processor Processor
	logger    *slog.Logger

	workers int
	size    int
	timeout time.Duration

	jobs    chan Job
	wg      sync.WaitGroup
	mu      sync.Mutex
	closing bool
}

func NewProcessorQueue(processor Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		processor: processor,
		logger:    logger,
		workers:   2,
		size:      64,
		timeout:   10 * time.Minute,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.jobs = make(chan Job, q.size)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	if q.closing {
		q.mu.Unlock()
		return ErrShuttingDown
	}
	q.mu.Unlock()

	select {
	case q.jobs <- job:
		q.logger.Info("queue.enqueued", "run_id", job.RunID, "rows", len(job.Rows))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting work and waits for in-flight runs, bounded by ctx.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closing {
		q.mu.Unlock()
		return
	}
	q.closing = true
	q.mu.Unlock()
	close(q.jobs)

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		q.logger.Info("queue.drained")
	case <-ctx.Done():
		q.logger.Warn("queue.shutdown.timeout")
	}
}

func (q *ProcessorQueue) worker() {
	defer q.wg.Done()
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		start := time.Now()
		if err := q.processor.ProcessRun(ctx, job); err != nil {
			q.logger.Error("queue.run.failed", "run_id", job.RunID, "error", err)
		} else {
			q.logger.Info("queue.run.done", "run_id", job.RunID, "elapsed_ms", time.Since(start).Milliseconds())
		}
		cancel()
	}
}

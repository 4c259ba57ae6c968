package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/homecrew/homecrew-backend/internal/pipeline"
)

type ScanQueue struct {
	pipe    *pipeline.Pipeline
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ScanQueue)

func WithWorkers(n int) Option {
	return func(q *ScanQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ScanQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithScanTimeout(d time.Duration) Option {
	return func(q *ScanQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewScanQueue(pipe *pipeline.Pipeline, logger *slog.Logger, opts ...Option) *ScanQueue {
	q := &ScanQueue{
		pipe:    pipe,
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

func (q *ScanQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res, err := q.pipe.Run(ctx, pipeline.ScanRequest{
						HouseholdID: job.HouseholdID,
						ImagePath:   job.ImagePath,
						RawText:     job.RawText,
					})
					cancel()

					if err != nil {
						q.logger.Error("scan failed", "worker_id", workerID, "household_id", job.HouseholdID, "error", err)
					} else {
						q.logger.Info("scanned receipt successfully", "worker_id", workerID, "household_id", job.HouseholdID, "expense_id", res.Expense.ID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ScanQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "household_id", job.HouseholdID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued receipt for scanning", "household_id", job.HouseholdID)
	default:
		q.logger.Warn("queue full, applying backpressure", "household_id", job.HouseholdID)
		q.ch <- job
	}
	return nil
}

func (q *ScanQueue) Shutdown(ctx context.Context) {
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

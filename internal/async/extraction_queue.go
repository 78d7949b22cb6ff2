package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
	"github.com/agrodesk/docextract/internal/pipeline"
)

// ExtractionQueue runs backlog documents through the pipeline with a bounded
// in-process worker pool. Enqueue applies backpressure when the buffer fills.
type ExtractionQueue struct {
	proc      *pipeline.Processor
	documents extract.DocumentStore
	logger    *slog.Logger
	workers   int
	timeout   time.Duration

	ch   chan Job
	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once

	mu        sync.Mutex
	producers sync.WaitGroup
	closed    bool
}

type Option func(*ExtractionQueue)

func WithWorkers(n int) Option {
	return func(q *ExtractionQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ExtractionQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ExtractionQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewExtractionQueue(proc *pipeline.Processor, documents extract.DocumentStore, logger *slog.Logger, opts ...Option) *ExtractionQueue {
	q := &ExtractionQueue{
		proc:      proc,
		documents: documents,
		logger:    logger,
		workers:   4,
		timeout:   2 * time.Minute,
		ch:        make(chan Job, 256),
		quit:      make(chan struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ExtractionQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.process(ctx, job)
					cancel()

					switch {
					case errors.Is(err, common.ErrAlreadyInFlight):
						q.logger.Info("document already in flight, skipping",
							"worker_id", workerID, "document_id", job.DocumentID)
					case err != nil:
						q.logger.Error("processing failed",
							"worker_id", workerID, "document_id", job.DocumentID, "error", err)
					default:
						q.logger.Info("processed document",
							"worker_id", workerID, "document_id", job.DocumentID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ExtractionQueue) process(ctx context.Context, job Job) error {
	if job.TraceID != "" {
		ctx = common.WithRequestID(ctx, job.TraceID)
	}
	doc, err := q.documents.GetDocument(ctx, job.DocumentID)
	if err != nil {
		return err
	}
	_, err = q.proc.Process(ctx, pipeline.Request{
		DocumentID:   doc.ID,
		Text:         doc.RawText,
		DeclaredType: doc.DeclaredType,
		OCRSource:    doc.OCRSource,
	})
	return err
}

// Enqueue submits a job, blocking for a free slot when the buffer is full.
// The blocking send happens outside the mutex so a full queue never stalls
// other enqueuers or Shutdown; the producers WaitGroup keeps the send safe
// against the channel close.
func (q *ExtractionQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return nil
	}
	q.producers.Add(1)
	q.mu.Unlock()
	defer q.producers.Done()

	select {
	case q.ch <- job:
		q.logger.Info("queued document for extraction", "document_id", job.DocumentID)
		return nil
	default:
	}

	q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID)
	select {
	case q.ch <- job:
		q.logger.Info("queued document for extraction", "document_id", job.DocumentID)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-q.quit:
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return nil
	}
}

func (q *ExtractionQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.quit)
	q.mu.Unlock()

	// Blocked enqueuers unblock via quit; wait for them before closing the
	// job channel.
	q.producers.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

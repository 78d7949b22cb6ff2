package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
	"github.com/agrodesk/docextract/internal/pipeline"
	"github.com/agrodesk/docextract/internal/rules"
)

type fakeDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*extract.Document
}

func (f *fakeDocs) GetDocument(_ context.Context, id uuid.UUID) (*extract.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return doc, nil
}

func (f *fakeDocs) ListPending(context.Context, int) ([]uuid.UUID, error) { return nil, nil }

type fakeResults struct {
	mu       sync.Mutex
	finished map[uuid.UUID]*extract.Result
}

func (f *fakeResults) Claim(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakeResults) Finish(_ context.Context, res *extract.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finished[res.DocumentID] = res
	return nil
}

func (f *fakeResults) Get(context.Context, uuid.UUID) (*extract.Result, error) {
	return nil, common.ErrNotFound
}

func (f *fakeResults) LatestForDocument(context.Context, uuid.UUID) (*extract.Result, error) {
	return nil, nil
}

func (f *fakeResults) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.finished)
}

type noopAI struct{}

func (noopAI) ExtractFields(context.Context, extract.AIRequest) extract.AIResult {
	return extract.AIResult{Fields: extract.FieldSet{}, Confidence: 0.5}
}

func TestQueueDrainsBacklog(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	docs := &fakeDocs{docs: make(map[uuid.UUID]*extract.Document)}
	results := &fakeResults{finished: make(map[uuid.UUID]*extract.Result)}

	cfg := common.ExtractionConfig{
		ConfidenceThreshold: constants.DefaultConfidenceThreshold,
		MinFieldCount:       constants.DefaultMinFieldCount,
		MinTextLength:       constants.DefaultMinTextLength,
		MinLetterRatio:      constants.DefaultMinLetterRatio,
		MaxPromptChars:      constants.DefaultMaxPromptChars,
	}
	proc := pipeline.NewProcessor(logger, cfg, rules.NewExtractor(logger), noopAI{}, results, nil)
	q := NewExtractionQueue(proc, docs, logger, WithWorkers(2), WithQueueSize(8))

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		id := uuid.New()
		ids = append(ids, id)
		docs.docs[id] = &extract.Document{
			ID:      id,
			RawText: "Owner: Jean Dupont, Address: 12 Rue des Champs, Total area: 85 ha, Parcels: 7",
		}
	}
	for _, id := range ids {
		if err := q.Enqueue(context.Background(), Job{DocumentID: id, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if results.count() != len(ids) {
		t.Fatalf("finished = %d, want %d", results.count(), len(ids))
	}
}

// blockingDocs parks the worker inside GetDocument until released, so tests
// can fill the queue deterministically.
type blockingDocs struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingDocs) GetDocument(ctx context.Context, _ uuid.UUID) (*extract.Document, error) {
	b.started <- struct{}{}
	select {
	case <-b.release:
	case <-ctx.Done():
	}
	return nil, common.ErrNotFound
}

func (b *blockingDocs) ListPending(context.Context, int) ([]uuid.UUID, error) { return nil, nil }

func TestQueueFullEnqueueDoesNotStallOthers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	docs := &blockingDocs{started: make(chan struct{}, 8), release: make(chan struct{})}
	results := &fakeResults{finished: make(map[uuid.UUID]*extract.Result)}
	proc := pipeline.NewProcessor(logger, common.ExtractionConfig{
		MinTextLength:  constants.DefaultMinTextLength,
		MinLetterRatio: constants.DefaultMinLetterRatio,
	}, rules.NewExtractor(logger), noopAI{}, results, nil)
	q := NewExtractionQueue(proc, docs, logger, WithWorkers(1), WithQueueSize(1), WithProcessTimeout(5*time.Second))

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	<-docs.started // worker is parked inside the first job
	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("enqueue into buffer: %v", err)
	}

	// The buffer is full, so this enqueue would block; a cancelled context
	// must return promptly instead of stalling.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if err := q.Enqueue(cancelled, Job{DocumentID: uuid.New()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("enqueue on full queue with cancelled context = %v, want context.Canceled", err)
	}

	// An enqueuer blocked on a full queue must not prevent Shutdown from
	// completing.
	blocked := make(chan error, 1)
	go func() { blocked <- q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}) }()
	time.Sleep(50 * time.Millisecond)

	close(docs.release)
	ctx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	q.Shutdown(ctx)

	if err := <-blocked; err != nil {
		t.Fatalf("blocked enqueue after shutdown = %v, want nil", err)
	}
}

func TestQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	docs := &fakeDocs{docs: make(map[uuid.UUID]*extract.Document)}
	results := &fakeResults{finished: make(map[uuid.UUID]*extract.Result)}
	proc := pipeline.NewProcessor(logger, common.ExtractionConfig{
		MinTextLength:  constants.DefaultMinTextLength,
		MinLetterRatio: constants.DefaultMinLetterRatio,
	}, rules.NewExtractor(logger), noopAI{}, results, nil)
	q := NewExtractionQueue(proc, docs, logger, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // idempotent

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("enqueue after shutdown should be a silent noop, got %v", err)
	}
	if results.count() != 0 {
		t.Fatal("nothing should have been processed")
	}
}

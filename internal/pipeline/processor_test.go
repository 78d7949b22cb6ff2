package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
	"github.com/agrodesk/docextract/internal/rules"
)

type fakeAI struct {
	calls   int
	lastReq extract.AIRequest
	result  extract.AIResult
}

func (f *fakeAI) ExtractFields(_ context.Context, req extract.AIRequest) extract.AIResult {
	f.calls++
	f.lastReq = req
	return f.result
}

type memStore struct {
	mu       sync.Mutex
	inFlight map[uuid.UUID]bool
	results  map[uuid.UUID]*extract.Result
	latest   map[uuid.UUID]uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		inFlight: make(map[uuid.UUID]bool),
		results:  make(map[uuid.UUID]*extract.Result),
		latest:   make(map[uuid.UUID]uuid.UUID),
	}
}

func (s *memStore) Claim(_ context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[documentID] {
		return uuid.Nil, common.ErrAlreadyInFlight
	}
	s.inFlight[documentID] = true
	return uuid.New(), nil
}

func (s *memStore) Finish(_ context.Context, res *extract.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, res.DocumentID)
	cp := *res
	s.results[res.ID] = &cp
	s.latest[res.DocumentID] = res.ID
	return nil
}

func (s *memStore) Get(_ context.Context, extractionID uuid.UUID) (*extract.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.results[extractionID]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (s *memStore) LatestForDocument(_ context.Context, documentID uuid.UUID) (*extract.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.latest[documentID]
	if !ok {
		return nil, nil
	}
	cp := *s.results[id]
	return &cp, nil
}

func testConfig() common.ExtractionConfig {
	return common.ExtractionConfig{
		ConfidenceThreshold: constants.DefaultConfidenceThreshold,
		MinFieldCount:       constants.DefaultMinFieldCount,
		MinTextLength:       constants.DefaultMinTextLength,
		MinLetterRatio:      constants.DefaultMinLetterRatio,
		MaxPromptChars:      constants.DefaultMaxPromptChars,
		MaxModelRetries:     2,
	}
}

func newTestProcessor(cfg common.ExtractionConfig, ai *fakeAI, store *memStore) *Processor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProcessor(logger, cfg, rules.NewExtractor(logger), ai, store, nil)
}

const richFarmText = "Owner: John Smith\n" +
	"Address: 14 Mill Lane, Yorkfield\n" +
	"Total area: 120.5 ha\n" +
	"Parcels: 12\n" +
	"E-mail: john@millfarm.example\n" +
	"Tel: +44 1904 555123\n"

func TestProcessTooShortInput(t *testing.T) {
	ai := &fakeAI{}
	store := newMemStore()
	p := newTestProcessor(testConfig(), ai, store)

	res, err := p.Process(context.Background(), Request{DocumentID: uuid.New(), Text: "abc"})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.Status != constants.StatusFailed {
		t.Fatalf("status = %s, want FAILED", res.Status)
	}
	if res.Overall != 0 {
		t.Fatalf("overall = %v, want exactly 0", res.Overall)
	}
	if !res.Metadata.NeedsReview {
		t.Fatal("unusable input must be flagged for review")
	}
	if res.Metadata.Tier != "" {
		t.Fatalf("tier = %q, want empty (no tier ran)", res.Metadata.Tier)
	}
	if ai.calls != 0 {
		t.Fatalf("ai calls = %d, want 0", ai.calls)
	}
}

func TestProcessUnreadableInput(t *testing.T) {
	ai := &fakeAI{}
	store := newMemStore()
	p := newTestProcessor(testConfig(), ai, store)

	// Long enough, but almost no letters.
	res, err := p.Process(context.Background(), Request{
		DocumentID: uuid.New(),
		Text:       "@@@ ### $$$ %%% ^^^ &&& *** ((( )))",
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.Status != constants.StatusFailed || res.Error == "" {
		t.Fatalf("want FAILED with error message, got %s %q", res.Status, res.Error)
	}
	if ai.calls != 0 {
		t.Fatalf("ai calls = %d, want 0", ai.calls)
	}
}

func TestProcessLocalAccept(t *testing.T) {
	ai := &fakeAI{}
	store := newMemStore()
	p := newTestProcessor(testConfig(), ai, store)

	res, err := p.Process(context.Background(), Request{
		DocumentID:   uuid.New(),
		Text:         richFarmText,
		DeclaredType: "farm",
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.Status != constants.StatusLocalOK {
		t.Fatalf("status = %s, want LOCAL_OK", res.Status)
	}
	if res.Metadata.Tier != constants.TierLocal {
		t.Fatalf("tier = %s, want local", res.Metadata.Tier)
	}
	if res.Overall < testConfig().ConfidenceThreshold {
		t.Fatalf("overall %v below threshold, should not have been accepted", res.Overall)
	}
	if len(res.Fields) < testConfig().MinFieldCount {
		t.Fatalf("only %d fields extracted from rich text", len(res.Fields))
	}
	if res.Metadata.NeedsReview {
		t.Fatal("accepted local result must not need review")
	}
	if ai.calls != 0 {
		t.Fatalf("ai calls = %d, want 0 on local accept", ai.calls)
	}

	stored, err := store.Get(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("result not persisted: %v", err)
	}
	if stored.Status != constants.StatusLocalOK {
		t.Fatalf("persisted status = %s", stored.Status)
	}
}

func TestProcessLocalAcceptWithValidationErrorsNeedsReview(t *testing.T) {
	ai := &fakeAI{}
	store := newMemStore()
	p := newTestProcessor(testConfig(), ai, store)

	text := richFarmText + "Registered on: 99/99/2020\n"
	res, err := p.Process(context.Background(), Request{
		DocumentID:   uuid.New(),
		Text:         text,
		DeclaredType: "farm",
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.Status != constants.StatusLocalOK {
		t.Fatalf("status = %s, want LOCAL_OK", res.Status)
	}
	if len(res.Metadata.ValidationErrors) == 0 {
		t.Fatal("expected a validation error for the implausible date")
	}
	if !res.Metadata.NeedsReview {
		t.Fatal("result with validation errors must be flagged for review")
	}
	if ai.calls != 0 {
		t.Fatalf("ai calls = %d, want 0 on local accept", ai.calls)
	}
}

func TestProcessEscalatesExactlyOnce(t *testing.T) {
	ai := &fakeAI{result: extract.AIResult{
		Fields: extract.FieldSet{
			constants.FieldOwnerName: {
				Name: constants.FieldOwnerName, Value: "Jean Dupont",
				Confidence: 0.82, Source: constants.SourceAIModel,
			},
		},
		Confidence: 0.82,
		ModelName:  "gpt-test",
	}}
	store := newMemStore()
	p := newTestProcessor(testConfig(), ai, store)

	// Plain prose: nothing for the pattern bank, so every trigger fires.
	res, err := p.Process(context.Background(), Request{
		DocumentID: uuid.New(),
		Text:       "This letter confirms the meeting scheduled for the farm visit next week.",
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if ai.calls != 1 {
		t.Fatalf("ai calls = %d, want exactly 1", ai.calls)
	}
	if res.Status != constants.StatusAIOK {
		t.Fatalf("status = %s, want AI_OK", res.Status)
	}
	if res.Metadata.Tier != constants.TierAI {
		t.Fatalf("tier = %s, want ai", res.Metadata.Tier)
	}
	if res.Overall != 0.82 {
		t.Fatalf("overall = %v, want AI confidence 0.82", res.Overall)
	}
	if res.Metadata.ModelName != "gpt-test" {
		t.Fatalf("model name = %q", res.Metadata.ModelName)
	}
	if res.Metadata.NeedsReview {
		t.Fatal("AI result above threshold must not need review")
	}
	if _, ok := res.Fields[constants.FieldOwnerName]; !ok {
		t.Fatal("AI fields must replace the local set")
	}
}

func TestProcessAIFailureFallsBackToLocal(t *testing.T) {
	ai := &fakeAI{result: extract.AIResult{
		Err:     "model call failed: status 503",
		ErrKind: extract.AIErrCall,
	}}
	store := newMemStore()

	// Force escalation by requiring more fields than the text yields.
	cfg := testConfig()
	cfg.MinFieldCount = 10
	p := newTestProcessor(cfg, ai, store)

	res, err := p.Process(context.Background(), Request{
		DocumentID: uuid.New(),
		Text:       richFarmText,
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.Status != constants.StatusFailed {
		t.Fatalf("status = %s, want FAILED", res.Status)
	}
	if res.Error == "" {
		t.Fatal("model error must be recorded on the result")
	}
	if res.Metadata.Tier != constants.TierLocal {
		t.Fatalf("tier = %s, want local fallback", res.Metadata.Tier)
	}
	if !res.Metadata.NeedsReview {
		t.Fatal("fallback result must be flagged for review")
	}
	if len(res.Fields) == 0 {
		t.Fatal("local fields must survive the model failure")
	}
}

func TestProcessDuplicateInFlight(t *testing.T) {
	ai := &fakeAI{}
	store := newMemStore()
	p := newTestProcessor(testConfig(), ai, store)

	docID := uuid.New()
	if _, err := store.Claim(context.Background(), docID); err != nil {
		t.Fatalf("seed claim: %v", err)
	}

	_, err := p.Process(context.Background(), Request{DocumentID: docID, Text: richFarmText})
	if !errors.Is(err, common.ErrAlreadyInFlight) {
		t.Fatalf("err = %v, want ErrAlreadyInFlight", err)
	}
	if ai.calls != 0 {
		t.Fatalf("ai calls = %d, want 0", ai.calls)
	}
}

func TestProcessMinFieldCountConfigurable(t *testing.T) {
	// Three confident fields: accepted at MinFieldCount 3, escalated at 4.
	text := "Owner: Jean Dupont, Address: 12 Rue des Champs, Total area: 45,5 ha"

	for _, tc := range []struct {
		minFields  int
		wantStatus constants.ExtractionStatus
		wantCalls  int
	}{
		{minFields: 3, wantStatus: constants.StatusLocalOK, wantCalls: 0},
		{minFields: 4, wantStatus: constants.StatusAIOK, wantCalls: 1},
	} {
		ai := &fakeAI{result: extract.AIResult{Fields: extract.FieldSet{}, Confidence: 0.5}}
		cfg := testConfig()
		cfg.MinFieldCount = tc.minFields
		p := newTestProcessor(cfg, ai, newMemStore())

		res, err := p.Process(context.Background(), Request{DocumentID: uuid.New(), Text: text})
		if err != nil {
			t.Fatalf("minFields=%d: %v", tc.minFields, err)
		}
		if res.Status != tc.wantStatus {
			t.Errorf("minFields=%d: status = %s, want %s", tc.minFields, res.Status, tc.wantStatus)
		}
		if ai.calls != tc.wantCalls {
			t.Errorf("minFields=%d: ai calls = %d, want %d", tc.minFields, ai.calls, tc.wantCalls)
		}
	}
}

func TestProcessReturnsStoredResultUnlessForced(t *testing.T) {
	ai := &fakeAI{}
	store := newMemStore()
	p := newTestProcessor(testConfig(), ai, store)

	docID := uuid.New()
	first, err := p.Process(context.Background(), Request{DocumentID: docID, Text: richFarmText})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}

	again, err := p.Process(context.Background(), Request{DocumentID: docID, Text: richFarmText})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if again.ID != first.ID {
		t.Fatal("without force, the stored result must be returned")
	}

	forced, err := p.Process(context.Background(), Request{DocumentID: docID, Text: richFarmText, Force: true})
	if err != nil {
		t.Fatalf("forced run: %v", err)
	}
	if forced.ID == first.ID {
		t.Fatal("force must reprocess into a new extraction")
	}
}

func TestRetryCreatesSupersedingResult(t *testing.T) {
	ai := &fakeAI{result: extract.AIResult{
		Fields: extract.FieldSet{
			constants.FieldOwnerName: {
				Name: constants.FieldOwnerName, Value: "Maria Ionescu",
				Confidence: 0.9, Source: constants.SourceAIModel,
			},
		},
		Confidence: 0.9,
		ModelName:  "gpt-large",
	}}
	store := newMemStore()
	p := newTestProcessor(testConfig(), ai, store)

	prior := &extract.Result{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Status:     constants.StatusFailed,
		SourceText: "Proprietar: Maria Ionescu, suprafață 12 ha",
		Fields:     extract.FieldSet{},
		Metadata: extract.Metadata{
			Language:   constants.LangRO,
			Tier:       constants.TierLocal,
			RetryCount: 0,
		},
	}
	if err := store.Finish(context.Background(), prior); err != nil {
		t.Fatalf("seed prior: %v", err)
	}

	res, err := p.Retry(context.Background(), prior.ID, "gpt-large")
	if err != nil {
		t.Fatalf("Retry returned error: %v", err)
	}
	if res.ID == prior.ID {
		t.Fatal("retry must create a new result, not mutate the prior one")
	}
	if res.Metadata.RetryCount != 1 {
		t.Fatalf("retry count = %d, want 1", res.Metadata.RetryCount)
	}
	if ai.calls != 1 {
		t.Fatalf("ai calls = %d, want 1", ai.calls)
	}
	if ai.lastReq.Model != "gpt-large" {
		t.Fatalf("model override = %q, want gpt-large", ai.lastReq.Model)
	}
	if ai.lastReq.Language != constants.LangRO {
		t.Fatalf("language = %s, want stored ro", ai.lastReq.Language)
	}
	if res.Status != constants.StatusAIOK || res.Overall != 0.9 {
		t.Fatalf("status/overall = %s/%v", res.Status, res.Overall)
	}

	// The prior row is untouched.
	old, err := store.Get(context.Background(), prior.ID)
	if err != nil {
		t.Fatalf("prior lookup: %v", err)
	}
	if old.Status != constants.StatusFailed {
		t.Fatalf("prior status changed to %s", old.Status)
	}
}

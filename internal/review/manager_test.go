package review

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
)

type memResults struct {
	results map[uuid.UUID]*extract.Result
	latest  map[uuid.UUID]uuid.UUID
}

func newMemResults() *memResults {
	return &memResults{
		results: make(map[uuid.UUID]*extract.Result),
		latest:  make(map[uuid.UUID]uuid.UUID),
	}
}

func (s *memResults) Claim(context.Context, uuid.UUID) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (s *memResults) Finish(_ context.Context, res *extract.Result) error {
	cp := *res
	s.results[res.ID] = &cp
	s.latest[res.DocumentID] = res.ID
	return nil
}

func (s *memResults) Get(_ context.Context, id uuid.UUID) (*extract.Result, error) {
	res, ok := s.results[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *res
	cp.Fields = res.Fields.Clone()
	return &cp, nil
}

func (s *memResults) LatestForDocument(_ context.Context, docID uuid.UUID) (*extract.Result, error) {
	id, ok := s.latest[docID]
	if !ok {
		return nil, nil
	}
	return s.Get(context.Background(), id)
}

type memReviews struct {
	records []*extract.ReviewRecord
}

func (s *memReviews) Append(_ context.Context, rec *extract.ReviewRecord) error {
	cp := *rec
	s.records = append(s.records, &cp)
	return nil
}

func (s *memReviews) ListForExtraction(_ context.Context, id uuid.UUID) ([]*extract.ReviewRecord, error) {
	var out []*extract.ReviewRecord
	for _, r := range s.records {
		if r.ExtractionID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func seedResult(t *testing.T, store *memResults) *extract.Result {
	t.Helper()
	ha := 85.0
	res := &extract.Result{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Status:     constants.StatusAIOK,
		Overall:    0.62,
		Fields: extract.FieldSet{
			constants.FieldOwnerName: {
				Name: constants.FieldOwnerName, Value: "Jean Dupond",
				Confidence: 0.6, Source: constants.SourceAIModel,
			},
			constants.FieldTotalHectares: {
				Name: constants.FieldTotalHectares, Value: "85",
				Numeric: &ha, Confidence: 0.9, Source: "pattern_0",
			},
		},
		Metadata:  extract.Metadata{Tier: constants.TierAI, NeedsReview: true},
		CreatedAt: time.Now().UTC(),
	}
	if err := store.Finish(context.Background(), res); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return res
}

func newTestManager(results *memResults, reviews *memReviews) *Manager {
	return NewManager(slog.New(slog.NewTextHandler(io.Discard, nil)), results, reviews)
}

func TestSubmitAppliesCorrections(t *testing.T) {
	results := newMemResults()
	reviews := &memReviews{}
	m := newTestManager(results, reviews)
	prior := seedResult(t, results)

	res, rec, err := m.Submit(context.Background(), SubmitRequest{
		ExtractionID: prior.ID,
		ReviewerID:   "reviewer-7",
		Corrections: map[string]string{
			constants.FieldOwnerName:     "Jean Dupont",
			constants.FieldTotalHectares: "87.5",
		},
		Notes: "name typo, surface per cadastre",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	owner := res.Fields[constants.FieldOwnerName]
	if owner.Value != "Jean Dupont" || owner.Confidence != 1.0 || owner.Source != constants.SourceManualReview {
		t.Fatalf("owner after review = %+v", owner)
	}
	ha := res.Fields[constants.FieldTotalHectares]
	if ha.Numeric == nil || *ha.Numeric != 87.5 {
		t.Fatalf("hectares numeric = %v, want 87.5", ha.Numeric)
	}
	if res.Status != constants.StatusReviewed || res.Overall != 1.0 {
		t.Fatalf("status/overall = %s/%v", res.Status, res.Overall)
	}
	if !res.Metadata.ManuallyReviewed || res.Metadata.ReviewedAt == nil || res.Metadata.NeedsReview {
		t.Fatalf("review metadata not set: %+v", res.Metadata)
	}

	if rec.OriginalFields[constants.FieldOwnerName] != "Jean Dupond" {
		t.Fatalf("original value not captured: %v", rec.OriginalFields)
	}
	if rec.CorrectedFields[constants.FieldTotalHectares] != "87.5" {
		t.Fatalf("corrected value not captured: %v", rec.CorrectedFields)
	}

	history, err := m.History(context.Background(), prior.ID)
	if err != nil || len(history) != 1 {
		t.Fatalf("history = %v, %v", history, err)
	}

	stored, _ := results.Get(context.Background(), prior.ID)
	if stored.Status != constants.StatusReviewed {
		t.Fatalf("persisted status = %s", stored.Status)
	}
}

func TestSubmitEmptyValueRemovesField(t *testing.T) {
	results := newMemResults()
	m := newTestManager(results, &memReviews{})
	prior := seedResult(t, results)

	res, _, err := m.Submit(context.Background(), SubmitRequest{
		ExtractionID: prior.ID,
		ReviewerID:   "reviewer-7",
		Corrections:  map[string]string{constants.FieldOwnerName: ""},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, ok := res.Fields[constants.FieldOwnerName]; ok {
		t.Fatal("empty correction must remove the field")
	}
}

func TestSubmitUnchangedValueKeepsPriorConfidence(t *testing.T) {
	results := newMemResults()
	m := newTestManager(results, &memReviews{})
	prior := seedResult(t, results)

	res, _, err := m.Submit(context.Background(), SubmitRequest{
		ExtractionID: prior.ID,
		ReviewerID:   "reviewer-7",
		Corrections: map[string]string{
			constants.FieldOwnerName:     "Jean Dupont",
			constants.FieldTotalHectares: "85",
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	ha := res.Fields[constants.FieldTotalHectares]
	if ha.Confidence != 0.9 || ha.Source != "pattern_0" {
		t.Fatalf("restated field must keep prior confidence and source, got %+v", ha)
	}
	owner := res.Fields[constants.FieldOwnerName]
	if owner.Confidence != 1.0 || owner.Source != constants.SourceManualReview {
		t.Fatalf("changed field must be promoted, got %+v", owner)
	}
}

func TestSubmitStaleExtractionConflicts(t *testing.T) {
	results := newMemResults()
	m := newTestManager(results, &memReviews{})
	prior := seedResult(t, results)

	// A newer extraction for the same document supersedes the prior one.
	newer := &extract.Result{
		ID:         uuid.New(),
		DocumentID: prior.DocumentID,
		Status:     constants.StatusAIOK,
		Fields:     extract.FieldSet{},
	}
	if err := results.Finish(context.Background(), newer); err != nil {
		t.Fatalf("seed newer: %v", err)
	}

	_, _, err := m.Submit(context.Background(), SubmitRequest{
		ExtractionID: prior.ID,
		ReviewerID:   "reviewer-7",
		Corrections:  map[string]string{constants.FieldOwnerName: "X Y"},
	})
	if !errors.Is(err, common.ErrReviewConflict) {
		t.Fatalf("err = %v, want ErrReviewConflict", err)
	}
}

func TestSubmitRejectsBadInput(t *testing.T) {
	results := newMemResults()
	m := newTestManager(results, &memReviews{})
	prior := seedResult(t, results)

	cases := []struct {
		name string
		req  SubmitRequest
	}{
		{"missing reviewer", SubmitRequest{
			ExtractionID: prior.ID,
			Corrections:  map[string]string{constants.FieldOwnerName: "A B"},
		}},
		{"no corrections", SubmitRequest{
			ExtractionID: prior.ID,
			ReviewerID:   "r1",
		}},
		{"unknown field", SubmitRequest{
			ExtractionID: prior.ID,
			ReviewerID:   "r1",
			Corrections:  map[string]string{"surface_area": "12"},
		}},
		{"non-numeric hectares", SubmitRequest{
			ExtractionID: prior.ID,
			ReviewerID:   "r1",
			Corrections:  map[string]string{constants.FieldTotalHectares: "lots"},
		}},
	}
	for _, tc := range cases {
		if _, _, err := m.Submit(context.Background(), tc.req); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestSubmitUnknownExtraction(t *testing.T) {
	m := newTestManager(newMemResults(), &memReviews{})
	_, _, err := m.Submit(context.Background(), SubmitRequest{
		ExtractionID: uuid.New(),
		ReviewerID:   "r1",
		Corrections:  map[string]string{constants.FieldOwnerName: "A B"},
	})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

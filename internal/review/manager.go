package review

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
)

// SubmitRequest carries one human correction pass over an extraction.
// Corrections maps canonical field name to the corrected value; an empty
// value removes the field.
type SubmitRequest struct {
	ExtractionID uuid.UUID
	ReviewerID   string
	Corrections  map[string]string
	Notes        string
}

// Manager applies human corrections and keeps the append-only audit trail.
type Manager struct {
	logger  *slog.Logger
	results extract.ResultStore
	reviews extract.ReviewStore
}

func NewManager(logger *slog.Logger, results extract.ResultStore, reviews extract.ReviewStore) *Manager {
	return &Manager{logger: logger, results: results, reviews: reviews}
}

// Submit validates the correction set, writes the audit record, and updates
// the extraction in place. Reviewing a superseded extraction fails with
// ErrReviewConflict so corrections always land on the current result.
func (m *Manager) Submit(ctx context.Context, req SubmitRequest) (*extract.Result, *extract.ReviewRecord, error) {
	if req.ReviewerID == "" {
		return nil, nil, common.InvalidArgumentError("reviewer id is required")
	}
	if len(req.Corrections) == 0 {
		return nil, nil, common.InvalidArgumentError("at least one correction is required")
	}
	for name := range req.Corrections {
		if !constants.IsCanonicalField(name) {
			return nil, nil, common.InvalidArgumentErrorf("unknown field %q", name)
		}
	}

	res, err := m.results.Get(ctx, req.ExtractionID)
	if err != nil {
		return nil, nil, err
	}

	latest, err := m.results.LatestForDocument(ctx, res.DocumentID)
	if err != nil {
		return nil, nil, err
	}
	if latest != nil && latest.ID != res.ID {
		m.logger.Warn("review.submit.stale",
			"extraction_id", req.ExtractionID, "latest_id", latest.ID)
		return nil, nil, common.ErrReviewConflict
	}

	rec := &extract.ReviewRecord{
		ID:              uuid.New(),
		ExtractionID:    res.ID,
		ReviewerID:      req.ReviewerID,
		OriginalFields:  make(map[string]string, len(req.Corrections)),
		CorrectedFields: make(map[string]string, len(req.Corrections)),
		Notes:           req.Notes,
		ReviewedAt:      time.Now().UTC(),
	}

	if res.Fields == nil {
		res.Fields = extract.FieldSet{}
	}
	for name, corrected := range req.Corrections {
		prev, had := res.Fields[name]
		if had {
			rec.OriginalFields[name] = prev.Value
		}
		corrected = strings.TrimSpace(corrected)
		rec.CorrectedFields[name] = corrected

		if corrected == "" {
			delete(res.Fields, name)
			continue
		}
		// A correction that restates the stored value keeps its prior
		// confidence and source.
		if had && corrected == prev.Value {
			continue
		}

		field := extract.Field{
			Name:       name,
			Value:      corrected,
			Confidence: 1.0,
			Source:     constants.SourceManualReview,
		}
		if constants.IsNumericField(name) {
			n, err := strconv.ParseFloat(corrected, 64)
			if err != nil {
				return nil, nil, common.InvalidArgumentErrorf("field %q needs a numeric value: %q", name, corrected)
			}
			field.Numeric = &n
		}
		res.Fields[name] = field
	}

	now := rec.ReviewedAt
	res.Status = constants.StatusReviewed
	res.Overall = 1.0
	res.Metadata.NeedsReview = false
	res.Metadata.ManuallyReviewed = true
	res.Metadata.ReviewedAt = &now

	if err := m.reviews.Append(ctx, rec); err != nil {
		return nil, nil, common.WrapError(err, "appending review record")
	}
	if err := m.results.Finish(ctx, res); err != nil {
		return nil, nil, common.WrapError(err, "updating reviewed extraction")
	}

	m.logger.Info("review.submit.done",
		"extraction_id", res.ID,
		"reviewer_id", req.ReviewerID,
		"corrected_fields", len(rec.CorrectedFields))
	return res, rec, nil
}

// History lists all review records for one extraction, oldest first.
func (m *Manager) History(ctx context.Context, extractionID uuid.UUID) ([]*extract.ReviewRecord, error) {
	return m.reviews.ListForExtraction(ctx, extractionID)
}

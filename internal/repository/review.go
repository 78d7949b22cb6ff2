package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/gen/ent"
	"github.com/agrodesk/docextract/gen/ent/reviewrecord"
	"github.com/agrodesk/docextract/internal/extract"
)

type reviewRepo struct {
	ent *ent.Client
	log *slog.Logger
}

// NewReviewRepository returns the ent-backed extract.ReviewStore.
func NewReviewRepository(entc *ent.Client, log *slog.Logger) extract.ReviewStore {
	return &reviewRepo{ent: entc, log: log}
}

func (r *reviewRepo) Append(ctx context.Context, rec *extract.ReviewRecord) error {
	original, err := json.Marshal(rec.OriginalFields)
	if err != nil {
		return err
	}
	corrected, err := json.Marshal(rec.CorrectedFields)
	if err != nil {
		return err
	}

	create := r.ent.ReviewRecord.Create().
		SetExtractionID(rec.ExtractionID).
		SetReviewerID(rec.ReviewerID).
		SetOriginalFields(original).
		SetCorrectedFields(corrected).
		SetReviewedAt(rec.ReviewedAt)
	if rec.ID != uuid.Nil {
		create = create.SetID(rec.ID)
	}
	if rec.Notes != "" {
		create = create.SetNotes(rec.Notes)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("review append failed", "extraction_id", rec.ExtractionID, "err", err)
		return err
	}
	rec.ID = row.ID
	return nil
}

func (r *reviewRepo) ListForExtraction(ctx context.Context, extractionID uuid.UUID) ([]*extract.ReviewRecord, error) {
	rows, err := r.ent.ReviewRecord.Query().
		Where(reviewrecord.ExtractionID(extractionID)).
		Order(ent.Asc(reviewrecord.FieldReviewedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*extract.ReviewRecord, 0, len(rows))
	for _, row := range rows {
		rec := &extract.ReviewRecord{
			ID:           row.ID,
			ExtractionID: row.ExtractionID,
			ReviewerID:   row.ReviewerID,
			ReviewedAt:   row.ReviewedAt,
		}
		if row.Notes != nil {
			rec.Notes = *row.Notes
		}
		if len(row.OriginalFields) > 0 {
			if err := json.Unmarshal(row.OriginalFields, &rec.OriginalFields); err != nil {
				return nil, err
			}
		}
		if len(row.CorrectedFields) > 0 {
			if err := json.Unmarshal(row.CorrectedFields, &rec.CorrectedFields); err != nil {
				return nil, err
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

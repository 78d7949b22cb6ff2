package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/gen/ent"
	"github.com/agrodesk/docextract/gen/ent/extractionresult"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
)

// ExtractionRepository extends the pipeline-facing store with listing for
// export and the gRPC surface.
type ExtractionRepository interface {
	extract.ResultStore
	ListRecent(ctx context.Context, limit int) ([]*extract.Result, error)
}

type extractionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionRepository(entc *ent.Client, log *slog.Logger) ExtractionRepository {
	return &extractionRepo{ent: entc, log: log}
}

// A claim older than this without a result is considered abandoned (the
// process crashed between Claim and Finish) and is failed so the document
// can be claimed again.
const staleClaimAge = 15 * time.Minute

// Claim inserts a RUNNING row for documentID. A partial unique index on
// (document_id) WHERE status = 'RUNNING' makes the insert race-free across
// replicas; the constraint violation maps to ErrAlreadyInFlight.
func (r *extractionRepo) Claim(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	expired, err := r.ent.ExtractionResult.Update().
		Where(
			extractionresult.DocumentID(documentID),
			extractionresult.Status(string(constants.StatusRunning)),
			extractionresult.CreatedAtLT(time.Now().Add(-staleClaimAge)),
		).
		SetStatus(string(constants.StatusFailed)).
		SetErrorMessage("claim expired without a result").
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if expired > 0 {
		r.log.Warn("reclaimed stale extraction", "document_id", documentID, "count", expired)
	}

	row, err := r.ent.ExtractionResult.Create().
		SetDocumentID(documentID).
		SetStatus(string(constants.StatusRunning)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return uuid.Nil, common.ErrAlreadyInFlight
		}
		r.log.Error("extraction claim failed", "document_id", documentID, "err", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (r *extractionRepo) Finish(ctx context.Context, res *extract.Result) error {
	fieldsJSON, err := json.Marshal(res.Fields)
	if err != nil {
		return err
	}
	metaJSON, err := json.Marshal(res.Metadata)
	if err != nil {
		return err
	}

	upd := r.ent.ExtractionResult.UpdateOneID(res.ID).
		SetDocumentType(string(res.DocumentType)).
		SetStatus(string(res.Status)).
		SetOverallConfidence(res.Overall).
		SetFields(fieldsJSON).
		SetMetadata(metaJSON).
		SetRetryCount(res.Metadata.RetryCount).
		SetNeedsReview(res.Metadata.NeedsReview).
		SetFinishedAt(time.Now())
	if res.Metadata.Tier != "" {
		upd = upd.SetTier(string(res.Metadata.Tier))
	}
	if res.Metadata.Language != "" {
		upd = upd.SetLanguage(string(res.Metadata.Language))
	}
	if res.Error != "" {
		upd = upd.SetErrorMessage(res.Error)
	}
	if res.RawResponse != "" {
		upd = upd.SetRawResponse(res.RawResponse)
	}
	if res.SourceText != "" {
		upd = upd.SetSourceText(res.SourceText)
	}

	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("extraction finish failed", "extraction_id", res.ID, "err", err)
		return err
	}
	return nil
}

func (r *extractionRepo) Get(ctx context.Context, extractionID uuid.UUID) (*extract.Result, error) {
	row, err := r.ent.ExtractionResult.Get(ctx, extractionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return resultFromRow(row)
}

func (r *extractionRepo) LatestForDocument(ctx context.Context, documentID uuid.UUID) (*extract.Result, error) {
	row, err := r.ent.ExtractionResult.Query().
		Where(extractionresult.DocumentID(documentID)).
		Order(ent.Desc(extractionresult.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return resultFromRow(row)
}

// ListRecent returns the newest finished results, for export and listing.
func (r *extractionRepo) ListRecent(ctx context.Context, limit int) ([]*extract.Result, error) {
	rows, err := r.ent.ExtractionResult.Query().
		Where(extractionresult.StatusNEQ(string(constants.StatusRunning))).
		Order(ent.Desc(extractionresult.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*extract.Result, 0, len(rows))
	for _, row := range rows {
		res, err := resultFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func resultFromRow(row *ent.ExtractionResult) (*extract.Result, error) {
	res := &extract.Result{
		ID:           row.ID,
		DocumentID:   row.DocumentID,
		DocumentType: constants.DocumentType(row.DocumentType),
		Status:       constants.ExtractionStatus(row.Status),
		Overall:      row.OverallConfidence,
		CreatedAt:    row.CreatedAt,
	}
	if row.ErrorMessage != nil {
		res.Error = *row.ErrorMessage
	}
	if row.RawResponse != nil {
		res.RawResponse = *row.RawResponse
	}
	if row.SourceText != nil {
		res.SourceText = *row.SourceText
	}
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, &res.Fields); err != nil {
			return nil, err
		}
	}
	if res.Fields == nil {
		res.Fields = extract.FieldSet{}
	}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &res.Metadata); err != nil {
			return nil, err
		}
	}
	return res, nil
}

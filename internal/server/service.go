package server

import (
	"errors"
	"log/slog"
	"time"

	extractorpb "github.com/agrodesk/docextract/gen/extractor/v1"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/export"
	"github.com/agrodesk/docextract/internal/extract"
	"github.com/agrodesk/docextract/internal/pipeline"
	"github.com/agrodesk/docextract/internal/repository"
	"github.com/agrodesk/docextract/internal/review"

	"github.com/agrodesk/docextract/constants"
)

// ExtractorService is the single gRPC surface over the pipeline, the review
// workflow, and the export façade.
type ExtractorService struct {
	extractorpb.UnimplementedExtractorServiceServer
	processor *pipeline.Processor
	documents repository.DocumentRepository
	results   repository.ExtractionRepository
	reviews   *review.Manager
	exporter  *export.Service
	logger    *slog.Logger
	// retryModel is used by RetryExtraction when the request names no model,
	// typically a stronger model than the pipeline default.
	retryModel string
}

func NewExtractorService(
	processor *pipeline.Processor,
	documents repository.DocumentRepository,
	results repository.ExtractionRepository,
	reviews *review.Manager,
	exporter *export.Service,
	retryModel string,
	logger *slog.Logger,
) *ExtractorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractorService{
		processor:  processor,
		documents:  documents,
		results:    results,
		reviews:    reviews,
		exporter:   exporter,
		retryModel: retryModel,
		logger:     logger,
	}
}

// mapError translates domain sentinels onto gRPC status codes. Errors that
// already carry a status pass through unchanged.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(err.Error())
	case errors.Is(err, common.ErrAlreadyInFlight):
		return common.FailedPreconditionError(err.Error())
	case errors.Is(err, common.ErrReviewConflict):
		return common.FailedPreconditionError(err.Error())
	case errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(err.Error())
	default:
		return err
	}
}

func toPBExtraction(res *extract.Result) *extractorpb.Extraction {
	out := &extractorpb.Extraction{
		ExtractionId:      res.ID.String(),
		DocumentId:        res.DocumentID.String(),
		DocumentType:      string(res.DocumentType),
		OverallConfidence: res.Overall,
		Status:            string(res.Status),
		Error:             res.Error,
		Metadata:          toPBMetadata(res.Metadata),
	}
	if !res.CreatedAt.IsZero() {
		out.CreatedAt = res.CreatedAt.Format(time.RFC3339Nano)
	}
	out.Fields = make([]*extractorpb.ExtractedField, 0, len(res.Fields))
	for _, name := range constants.CanonicalFields {
		f, ok := res.Fields[name]
		if !ok {
			continue
		}
		pf := &extractorpb.ExtractedField{
			Name:       f.Name,
			Value:      f.Value,
			Confidence: f.Confidence,
			Source:     f.Source,
		}
		if f.Numeric != nil {
			pf.Numeric = f.Numeric
		}
		out.Fields = append(out.Fields, pf)
	}
	return out
}

func toPBMetadata(m extract.Metadata) *extractorpb.ExtractionMetadata {
	out := &extractorpb.ExtractionMetadata{
		Tier:              string(m.Tier),
		RetryCount:        int32(m.RetryCount),
		ValidationErrors:  m.ValidationErrors,
		NeedsManualReview: m.NeedsReview,
		TextLength:        int32(m.TextLength),
		PromptTruncated:   m.PromptTruncated,
		Language:          string(m.Language),
		ModelName:         m.ModelName,
		ManuallyReviewed:  m.ManuallyReviewed,
	}
	if m.ReviewedAt != nil {
		out.ReviewedAt = m.ReviewedAt.Format(time.RFC3339Nano)
	}
	return out
}

func toPBReviewRecord(rec *extract.ReviewRecord) *extractorpb.ReviewRecord {
	return &extractorpb.ReviewRecord{
		Id:              rec.ID.String(),
		ExtractionId:    rec.ExtractionID.String(),
		ReviewerId:      rec.ReviewerID,
		OriginalFields:  rec.OriginalFields,
		CorrectedFields: rec.CorrectedFields,
		Notes:           rec.Notes,
		ReviewedAt:      rec.ReviewedAt.Format(time.RFC3339Nano),
	}
}

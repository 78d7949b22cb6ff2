package server

import (
	"context"
	"strings"

	"github.com/google/uuid"

	extractorpb "github.com/agrodesk/docextract/gen/extractor/v1"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/review"
)

func (s *ExtractorService) SubmitReview(ctx context.Context, req *extractorpb.SubmitReviewRequest) (*extractorpb.SubmitReviewResponse, error) {
	extractionID, err := uuid.Parse(strings.TrimSpace(req.GetExtractionId()))
	if err != nil {
		return nil, common.InvalidArgumentError("extraction_id must be a UUID")
	}

	res, rec, err := s.reviews.Submit(ctx, review.SubmitRequest{
		ExtractionID: extractionID,
		ReviewerID:   strings.TrimSpace(req.GetReviewerId()),
		Corrections:  req.GetCorrections(),
		Notes:        req.GetNotes(),
	})
	if err != nil {
		s.logger.Warn("server.review.rejected", "extraction_id", extractionID, "error", err)
		return nil, mapError(err)
	}
	return &extractorpb.SubmitReviewResponse{
		Extraction: toPBExtraction(res),
		Record:     toPBReviewRecord(rec),
	}, nil
}

func (s *ExtractorService) ListReviews(ctx context.Context, req *extractorpb.ListReviewsRequest) (*extractorpb.ListReviewsResponse, error) {
	extractionID, err := uuid.Parse(strings.TrimSpace(req.GetExtractionId()))
	if err != nil {
		return nil, common.InvalidArgumentError("extraction_id must be a UUID")
	}

	recs, err := s.reviews.History(ctx, extractionID)
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]*extractorpb.ReviewRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toPBReviewRecord(rec))
	}
	return &extractorpb.ListReviewsResponse{Records: out}, nil
}

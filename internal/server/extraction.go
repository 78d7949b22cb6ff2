package server

import (
	"context"
	"strings"

	"github.com/google/uuid"

	extractorpb "github.com/agrodesk/docextract/gen/extractor/v1"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
	"github.com/agrodesk/docextract/internal/pipeline"
)

func (s *ExtractorService) ExtractDocument(ctx context.Context, req *extractorpb.ExtractDocumentRequest) (*extractorpb.ExtractDocumentResponse, error) {
	if strings.TrimSpace(req.GetText()) == "" {
		return nil, common.InvalidArgumentError("text is required")
	}

	reqID := uuid.New().String()
	ctx = common.WithRequestID(ctx, reqID)
	s.logger.Info("server.extract.start",
		"req_id", reqID,
		"text_length", len(req.GetText()),
		"document_type", req.GetDocumentType())

	doc := &extract.Document{
		RawText:      req.GetText(),
		DeclaredType: req.GetDocumentType(),
		OCRSource:    req.GetOcrSource(),
	}
	docID, err := s.documents.CreateDocument(ctx, doc, req.GetFilename())
	if err != nil {
		s.logger.Error("server.extract.ingest_failed", "req_id", reqID, "error", err)
		return nil, common.InternalError("document ingest failed")
	}

	res, err := s.processor.Process(ctx, pipeline.Request{
		DocumentID:   docID,
		Text:         req.GetText(),
		DeclaredType: req.GetDocumentType(),
		OCRSource:    req.GetOcrSource(),
	})
	if err != nil {
		s.logger.Error("server.extract.failed", "req_id", reqID, "document_id", docID, "error", err)
		return nil, mapError(err)
	}
	return &extractorpb.ExtractDocumentResponse{Extraction: toPBExtraction(res)}, nil
}

func (s *ExtractorService) RetryExtraction(ctx context.Context, req *extractorpb.RetryExtractionRequest) (*extractorpb.ExtractDocumentResponse, error) {
	extractionID, err := uuid.Parse(strings.TrimSpace(req.GetExtractionId()))
	if err != nil {
		return nil, common.InvalidArgumentError("extraction_id must be a UUID")
	}

	model := strings.TrimSpace(req.GetModel())
	if model == "" {
		model = s.retryModel
	}

	ctx = common.WithExtractionID(ctx, extractionID.String())
	res, err := s.processor.Retry(ctx, extractionID, model)
	if err != nil {
		s.logger.Error("server.retry.failed", "extraction_id", extractionID, "error", err)
		return nil, mapError(err)
	}
	return &extractorpb.ExtractDocumentResponse{Extraction: toPBExtraction(res)}, nil
}

func (s *ExtractorService) GetExtraction(ctx context.Context, req *extractorpb.GetExtractionRequest) (*extractorpb.ExtractDocumentResponse, error) {
	extractionID, err := uuid.Parse(strings.TrimSpace(req.GetExtractionId()))
	if err != nil {
		return nil, common.InvalidArgumentError("extraction_id must be a UUID")
	}

	res, err := s.results.Get(ctx, extractionID)
	if err != nil {
		return nil, mapError(err)
	}
	return &extractorpb.ExtractDocumentResponse{Extraction: toPBExtraction(res)}, nil
}

func (s *ExtractorService) ListExtractions(ctx context.Context, req *extractorpb.ListExtractionsRequest) (*extractorpb.ListExtractionsResponse, error) {
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultListLimit
	}

	results, err := s.results.ListRecent(ctx, limit)
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]*extractorpb.Extraction, 0, len(results))
	for _, res := range results {
		out = append(out, toPBExtraction(res))
	}
	return &extractorpb.ListExtractionsResponse{Extractions: out}, nil
}

const defaultListLimit = 100

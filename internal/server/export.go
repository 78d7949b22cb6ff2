package server

import (
	"context"

	extractorpb "github.com/agrodesk/docextract/gen/extractor/v1"
	"github.com/agrodesk/docextract/internal/common"
)

const defaultExportLimit = 1000

func (s *ExtractorService) ExportExtractions(ctx context.Context, req *extractorpb.ExportExtractionsRequest) (*extractorpb.ExportExtractionsResponse, error) {
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultExportLimit
	}

	xlsx, count, err := s.exporter.ExportXLSX(ctx, limit)
	if err != nil {
		s.logger.Error("server.export.failed", "error", err)
		return nil, common.InternalError("export failed")
	}
	return &extractorpb.ExportExtractionsResponse{
		Xlsx:     xlsx,
		RowCount: int32(count),
	}, nil
}

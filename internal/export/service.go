package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/extract"
)

// ResultLister is the slice of the result store the exporter needs.
type ResultLister interface {
	ListRecent(ctx context.Context, limit int) ([]*extract.Result, error)
}

// Service produces XLSX bytes from finished extractions: one row per
// extraction, one column per canonical field.
type Service struct {
	results ResultLister
	logger  *slog.Logger
}

func NewService(results ResultLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{results: results, logger: logger}
}

const sheet = "Extractions"

var headerColumns = []string{
	"Extraction ID",
	"Document ID",
	"Document Type",
	"Status",
	"Tier",
	"Language",
	"Overall Confidence",
	"Needs Review",
	"Created At",
}

// ExportXLSX returns a workbook with the newest results, capped at limit.
func (s *Service) ExportXLSX(ctx context.Context, limit int) ([]byte, int, error) {
	start := time.Now()

	recs, err := s.results.ListRecent(ctx, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("query extractions: %w", err)
	}

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := make([]string, 0, len(headerColumns)+len(constants.CanonicalFields))
	headers = append(headers, headerColumns...)
	for _, name := range constants.CanonicalFields {
		headers = append(headers, name)
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.ID.String())
		write(2, r.DocumentID.String())
		write(3, string(r.DocumentType))
		write(4, string(r.Status))
		write(5, string(r.Metadata.Tier))
		write(6, string(r.Metadata.Language))
		write(7, fmt.Sprintf("%.2f", r.Overall))
		write(8, r.Metadata.NeedsReview)
		if !r.CreatedAt.IsZero() {
			write(9, r.CreatedAt.Format(time.RFC3339))
		}

		for i, name := range constants.CanonicalFields {
			if field, ok := r.Fields[name]; ok {
				write(len(headerColumns)+i+1, field.Value)
			}
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 38) // ids
	_ = f.SetColWidth(sheet, "C", "F", 16)
	_ = f.SetColWidth(sheet, "I", "I", 22) // timestamp

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(recs), nil
}

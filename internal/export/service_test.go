package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/extract"
)

type fakeLister struct {
	results []*extract.Result
}

func (f *fakeLister) ListRecent(_ context.Context, limit int) ([]*extract.Result, error) {
	if limit < len(f.results) {
		return f.results[:limit], nil
	}
	return f.results, nil
}

func TestExportXLSX(t *testing.T) {
	res := &extract.Result{
		ID:           uuid.New(),
		DocumentID:   uuid.New(),
		DocumentType: constants.FarmGeneric,
		Status:       constants.StatusLocalOK,
		Overall:      0.91,
		Fields: extract.FieldSet{
			constants.FieldOwnerName: {
				Name: constants.FieldOwnerName, Value: "Jean Dupont",
				Confidence: 0.85, Source: "pattern_0",
			},
			constants.FieldTotalHectares: {
				Name: constants.FieldTotalHectares, Value: "45.5",
				Confidence: 0.9, Source: "pattern_0",
			},
		},
		Metadata:  extract.Metadata{Tier: constants.TierLocal, Language: constants.LangFR},
		CreatedAt: time.Now().UTC(),
	}

	svc := NewService(&fakeLister{results: []*extract.Result{res}},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	data, count, err := svc.ExportXLSX(context.Background(), 100)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want header + 1", len(rows))
	}

	header := rows[0]
	ownerCol := -1
	for i, h := range header {
		if h == constants.FieldOwnerName {
			ownerCol = i
		}
	}
	if ownerCol == -1 {
		t.Fatalf("no %s column in header %v", constants.FieldOwnerName, header)
	}
	if rows[1][ownerCol] != "Jean Dupont" {
		t.Fatalf("owner cell = %q", rows[1][ownerCol])
	}
	if rows[1][0] != res.ID.String() {
		t.Fatalf("id cell = %q", rows[1][0])
	}
}

func TestExportXLSXEmpty(t *testing.T) {
	svc := NewService(&fakeLister{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, count, err := svc.ExportXLSX(context.Background(), 10)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer wb.Close()
	rows, err := wb.GetRows(sheet)
	if err != nil || len(rows) != 1 {
		t.Fatalf("rows = %v, err = %v, want header only", rows, err)
	}
}

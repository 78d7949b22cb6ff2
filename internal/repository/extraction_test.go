package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/gen/ent"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// A shared-cache in-memory database survives across pooled connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	client, err := OpenSQLite(dsn, logger)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClaimRejectsSecondClaimUntilFinished(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewExtractionRepository(client, logger)

	doc, err := client.Document.Create().
		SetRawText("Owner: John Smith, total area 85 ha").
		Save(ctx)
	if err != nil {
		t.Fatalf("create document: %v", err)
	}

	first, err := repo.Claim(ctx, doc.ID)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if _, err := repo.Claim(ctx, doc.ID); !errors.Is(err, common.ErrAlreadyInFlight) {
		t.Fatalf("second claim err = %v, want ErrAlreadyInFlight", err)
	}

	err = repo.Finish(ctx, &extract.Result{
		ID:           first,
		DocumentID:   doc.ID,
		DocumentType: constants.Unknown,
		Status:       constants.StatusLocalOK,
		Fields:       extract.FieldSet{},
	})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	if _, err := repo.Claim(ctx, doc.ID); err != nil {
		t.Fatalf("claim after finish: %v", err)
	}
}

func TestClaimExpiresStaleRunningRow(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewExtractionRepository(client, logger)

	doc, err := client.Document.Create().
		SetRawText("Owner: John Smith, total area 85 ha").
		Save(ctx)
	if err != nil {
		t.Fatalf("create document: %v", err)
	}

	// A RUNNING row far older than staleClaimAge simulates a crash between
	// Claim and Finish.
	stale, err := client.ExtractionResult.Create().
		SetDocumentID(doc.ID).
		SetStatus(string(constants.StatusRunning)).
		SetCreatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed stale row: %v", err)
	}

	if _, err := repo.Claim(ctx, doc.ID); err != nil {
		t.Fatalf("claim over stale row: %v", err)
	}

	got, err := repo.Get(ctx, stale.ID)
	if err != nil {
		t.Fatalf("reload stale row: %v", err)
	}
	if got.Status != constants.StatusFailed {
		t.Fatalf("stale row status = %s, want FAILED", got.Status)
	}
	if got.Error == "" {
		t.Fatal("stale row should record why it was failed")
	}
}

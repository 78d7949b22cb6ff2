package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/gen/ent"
	"github.com/agrodesk/docextract/gen/ent/document"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
)

// DocumentRepository extends the read-only store with ingestion.
type DocumentRepository interface {
	extract.DocumentStore
	CreateDocument(ctx context.Context, doc *extract.Document, filename string) (uuid.UUID, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) CreateDocument(ctx context.Context, doc *extract.Document, filename string) (uuid.UUID, error) {
	create := r.ent.Document.Create().
		SetRawText(doc.RawText).
		SetOcrSource(doc.OCRSource)
	if doc.ID != uuid.Nil {
		create = create.SetID(doc.ID)
	}
	if doc.DeclaredType != "" {
		create = create.SetDeclaredType(doc.DeclaredType)
	}
	if filename != "" {
		create = create.SetFilename(filename)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "err", err)
		return uuid.Nil, err
	}
	r.log.Info("document ingested", "document_id", row.ID, "text_length", len(doc.RawText))
	return row.ID, nil
}

func (r *documentRepo) GetDocument(ctx context.Context, id uuid.UUID) (*extract.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	doc := &extract.Document{
		ID:        row.ID,
		RawText:   row.RawText,
		OCRSource: row.OcrSource,
	}
	if row.DeclaredType != nil {
		doc.DeclaredType = *row.DeclaredType
	}
	return doc, nil
}

// ListPending returns documents with no extraction rows yet, oldest first.
func (r *documentRepo) ListPending(ctx context.Context, limit int) ([]uuid.UUID, error) {
	return r.ent.Document.Query().
		Where(document.Not(document.HasExtractions())).
		Order(ent.Asc(document.FieldCreatedAt)).
		Limit(limit).
		IDs(ctx)
}

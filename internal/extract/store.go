package extract

import (
	"context"

	"github.com/google/uuid"
)

// Document is the caller-owned upload. Immutable once ingested; the pipeline
// only ever reads it.
type Document struct {
	ID           uuid.UUID
	RawText      string
	DeclaredType string // free-form hint from the upload subsystem
	OCRSource    bool   // text came from a low-fidelity extraction method
}

// DocumentStore reads ingested documents for backlog processing.
type DocumentStore interface {
	GetDocument(ctx context.Context, id uuid.UUID) (*Document, error)
	// ListPending returns ids of documents with no finished extraction yet.
	ListPending(ctx context.Context, limit int) ([]uuid.UUID, error)
}

// ResultStore persists extraction results. Writes are keyed by extraction id
// so concurrent extractions of different documents never interfere.
type ResultStore interface {
	// Claim creates a RUNNING extraction row for documentID. It fails with
	// common.ErrAlreadyInFlight when another RUNNING row exists for the same
	// document. This is the at-most-one-in-flight guard.
	Claim(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error)
	// Finish stores the final state of res (upsert by res.ID).
	Finish(ctx context.Context, res *Result) error
	Get(ctx context.Context, extractionID uuid.UUID) (*Result, error)
	// LatestForDocument returns the newest non-superseded result, or nil
	// when the document was never processed.
	LatestForDocument(ctx context.Context, documentID uuid.UUID) (*Result, error)
}

// ReviewStore appends audit records. Append-only: records are never updated
// or deleted.
type ReviewStore interface {
	Append(ctx context.Context, rec *ReviewRecord) error
	ListForExtraction(ctx context.Context, extractionID uuid.UUID) ([]*ReviewRecord, error)
}

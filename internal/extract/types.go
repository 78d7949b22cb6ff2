package extract

import (
	"time"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/constants"
)

// Field is one extracted value with its provenance and confidence.
// A field absent from a FieldSet means "not found", never a placeholder
// empty string.
type Field struct {
	Name       string   `json:"field"`
	Value      string   `json:"value"`
	Numeric    *float64 `json:"numeric,omitempty"` // set for numeric fields, parsed from Value
	Confidence float32  `json:"confidence"`        // always in [0,1]
	Source     string   `json:"source"`            // e.g. "pattern_2", "ai-model", "manual-review"
}

// FieldSet maps canonical field name -> extracted field.
type FieldSet map[string]Field

// Clone returns a shallow copy safe to mutate independently.
func (fs FieldSet) Clone() FieldSet {
	out := make(FieldSet, len(fs))
	for k, v := range fs {
		out[k] = v
	}
	return out
}

// HasCritical reports whether the set contains at least one critical field
// with confidence at or above floor.
func (fs FieldSet) HasCritical(floor float32) bool {
	for name, f := range fs {
		if constants.IsCriticalField(name) && f.Confidence >= floor {
			return true
		}
	}
	return false
}

// Metadata records how a result was produced.
type Metadata struct {
	Tier             constants.Tier     `json:"tier_used,omitempty"`
	RetryCount       int                `json:"retry_count"`
	ValidationErrors []string           `json:"validation_errors,omitempty"`
	NeedsReview      bool               `json:"needs_manual_review"`
	TextLength       int                `json:"text_length"`
	PromptTruncated  bool               `json:"prompt_truncated,omitempty"`
	Language         constants.Language `json:"language,omitempty"`
	ModelName        string             `json:"model_name,omitempty"`
	ManuallyReviewed bool               `json:"manually_reviewed"`
	ReviewedAt       *time.Time         `json:"reviewed_at,omitempty"`
	// LocalFields keeps the local tier's candidates for diagnostics when the
	// AI tier was used. Never merged into Fields.
	LocalFields FieldSet `json:"local_fields,omitempty"`
}

// Result is the canonical outcome of running the pipeline on one document.
// Entrypoints always return a well-formed Result; predictable failures are
// carried in Error/Metadata rather than thrown.
type Result struct {
	ID           uuid.UUID                  `json:"extraction_id"`
	DocumentID   uuid.UUID                  `json:"document_id"`
	DocumentType constants.DocumentType     `json:"document_type"`
	Fields       FieldSet                   `json:"fields"`
	Overall      float32                    `json:"overall_confidence"`
	Status       constants.ExtractionStatus `json:"status"`
	Error        string                     `json:"error,omitempty"`
	RawResponse  string                     `json:"-"` // preserved AI response for diagnostics
	SourceText   string                     `json:"-"` // document text, persisted for retry
	Metadata     Metadata                   `json:"metadata"`
	CreatedAt    time.Time                  `json:"created_at"`
}

// ReviewRecord is an append-only audit entry for a human correction.
type ReviewRecord struct {
	ID              uuid.UUID         `json:"id"`
	ExtractionID    uuid.UUID         `json:"extraction_id"`
	ReviewerID      string            `json:"reviewer_id"`
	OriginalFields  map[string]string `json:"original_fields"`
	CorrectedFields map[string]string `json:"corrected_fields"`
	Notes           string            `json:"notes,omitempty"`
	ReviewedAt      time.Time         `json:"reviewed_at"`
}

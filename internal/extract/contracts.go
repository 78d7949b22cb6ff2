package extract

import (
	"context"

	"github.com/agrodesk/docextract/constants"
)

// AIRequest carries everything the model-based tier needs for one call.
type AIRequest struct {
	Text         string
	Language     constants.Language
	DocumentType constants.DocumentType
	Model        string // overrides the client default when non-empty
	// OCRSource marks text produced by a low-fidelity extraction method;
	// the recomputed confidence gets a penalty multiplier.
	OCRSource bool
}

// AIResult is the model-based tier's outcome. Err/ErrKind are populated
// instead of returning an error: callers always receive a usable value.
type AIResult struct {
	Fields      FieldSet
	Confidence  float32 // recomputed from field coverage, not self-reported
	Advisory    float32 // model's self-reported confidence, advisory only
	RawResponse string  // preserved verbatim for diagnostics
	Truncated   bool    // prompt text was cut to the configured maximum
	ModelName   string
	Err         string
	ErrKind     AIErrKind
}

// AIErrKind distinguishes "retry the call" from "retry with a different
// prompt/model".
type AIErrKind string

const (
	AIErrNone  AIErrKind = ""
	AIErrCall  AIErrKind = "model_call"  // network/timeout/non-2xx; bounded retry applies
	AIErrParse AIErrKind = "model_parse" // response received but not locatable/valid JSON
)

// FieldExtractor is the interface the pipeline depends on for the AI tier.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req AIRequest) AIResult
}

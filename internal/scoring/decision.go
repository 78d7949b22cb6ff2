package scoring

import (
	"github.com/agrodesk/docextract/internal/extract"
)

// EscalateReason explains which trigger fired; empty means no escalation.
type EscalateReason string

const (
	ReasonNone          EscalateReason = ""
	ReasonLowConfidence EscalateReason = "low_confidence"
	ReasonFewFields     EscalateReason = "few_fields"
	ReasonNoCritical    EscalateReason = "no_critical_field"
)

// Decision is the pure fallback decision: escalate to the AI tier when ANY
// single trigger fires. The triggers are independent; there is no AND
// combination. Threshold and minFields come from the caller's configuration.
func Decision(overall float32, fields extract.FieldSet, threshold float32, minFields int) EscalateReason {
	if overall < threshold {
		return ReasonLowConfidence
	}
	if len(fields) < minFields {
		return ReasonFewFields
	}
	if !fields.HasCritical(0) {
		return ReasonNoCritical
	}
	return ReasonNone
}

// Package scoring combines per-field confidences into an overall score and
// decides whether the local tier's result warrants escalation.
package scoring

import (
	"github.com/agrodesk/docextract/internal/extract"
)

const (
	perFieldBonus     float32 = 0.02
	fieldBonusCap     float32 = 0.10
	criticalBonus     float32 = 0.05
	criticalPenalty   float32 = 0.10
	criticalConfFloor float32 = 0.50
)

// Aggregate computes the overall confidence for a candidate field set:
// mean per-field confidence, plus a capped bonus for the number of fields
// found, plus a bonus (or penalty) for critical-field presence. An empty set
// is exactly 0, short-circuited so there is no division by zero downstream.
func Aggregate(fields extract.FieldSet) float32 {
	if len(fields) == 0 {
		return 0
	}

	var sum float32
	for _, f := range fields {
		sum += f.Confidence
	}
	overall := sum / float32(len(fields))

	countBonus := perFieldBonus * float32(len(fields))
	if countBonus > fieldBonusCap {
		countBonus = fieldBonusCap
	}
	overall += countBonus

	if fields.HasCritical(criticalConfFloor) {
		overall += criticalBonus
	} else {
		overall -= criticalPenalty
	}

	if overall < 0 {
		return 0
	}
	if overall > 1 {
		return 1
	}
	return overall
}

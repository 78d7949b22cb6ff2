// Package rules implements the local extraction tier: an ordered,
// document-type-aware bank of per-field regular expressions with
// field-specific value cleaning and heuristic confidence.
package rules

import "regexp"

// CleanFunc normalizes a raw capture. An error means the match produced an
// unparseable value; the field is omitted and the error recorded, never
// aborting the run.
type CleanFunc func(raw string) (string, error)

// Rule is one pattern in a field's ordered list. Lists are ordered most
// specific first; the first matching rule wins and later ones are not tried.
type Rule struct {
	Pattern *regexp.Regexp
	Clean   CleanFunc
}

// Confidence shaping. Base is reduced per pattern position so the specific
// patterns at the head of a list score higher than the catch-alls behind them.
const (
	confidenceBase     float32 = 0.8
	positionPenalty    float32 = 0.05
	criticalBonus      float32 = 0.05
	confidenceFloor    float32 = 0.10
	confidenceCeiling  float32 = 0.95
	implausiblePenalty float32 = 0.20
	plausibleBonus     float32 = 0.05
)

func clampConfidence(c float32) float32 {
	if c < confidenceFloor {
		return confidenceFloor
	}
	if c > confidenceCeiling {
		return confidenceCeiling
	}
	return c
}

package llm

import (
	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/extract"
)

const (
	coverageBase       float32 = 0.30
	coverageWeight     float32 = 0.50
	criticalWeight     float32 = 0.15
	legalLocationBonus float32 = 0.05
	ocrPenaltyFactor   float32 = 0.85
	coverageCeiling    float32 = 0.95
)

// CoverageConfidence recomputes the AI tier's confidence from field coverage
// over the canonical taxonomy. The model's own confidence value is never
// used here. ocrSource applies the low-fidelity provenance penalty.
func CoverageConfidence(fields extract.FieldSet, ocrSource bool) float32 {
	if len(fields) == 0 {
		return 0
	}

	coverage := float32(len(fields)) / float32(len(constants.CanonicalFields))

	criticalTotal := 0
	criticalFound := 0
	legalLocationFound := 0
	for _, name := range constants.CanonicalFields {
		if constants.IsCriticalField(name) {
			criticalTotal++
			if _, ok := fields[name]; ok {
				criticalFound++
			}
		}
		if constants.IsLegalLocationField(name) {
			if _, ok := fields[name]; ok {
				legalLocationFound++
			}
		}
	}

	conf := coverageBase + coverageWeight*coverage
	if criticalTotal > 0 {
		conf += criticalWeight * float32(criticalFound) / float32(criticalTotal)
	}
	if legalLocationFound >= 2 {
		conf += legalLocationBonus
	}
	if ocrSource {
		conf *= ocrPenaltyFactor
	}

	if conf > coverageCeiling {
		return coverageCeiling
	}
	return conf
}

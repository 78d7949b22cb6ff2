package rules

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/extract"
)

// Extractor applies the pattern bank to raw text. Pure CPU-bound regex;
// identical input always yields identical output.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract runs every field's ordered pattern list against text. The first
// pattern that matches a field wins; its later patterns are not tried. A
// cleaner failure drops the field and records a validation note instead of
// aborting.
func (e *Extractor) Extract(text string, dt constants.DocumentType) (extract.FieldSet, []string) {
	bank := BankFor(dt)
	fields := make(extract.FieldSet)
	var validationErrs []string

	// Canonical order keeps validation notes deterministic.
	for _, name := range constants.CanonicalFields {
		rs, ok := bank[name]
		if !ok {
			continue
		}
		for pos, rule := range rs {
			m := rule.Pattern.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			raw := m[len(m)-1]
			value := raw
			if rule.Clean != nil {
				cleaned, err := rule.Clean(raw)
				if err != nil {
					validationErrs = append(validationErrs, fmt.Sprintf("%s: %v", name, err))
					break // first-match-wins applies even when cleaning fails
				}
				value = cleaned
			}

			f := extract.Field{
				Name:       name,
				Value:      value,
				Confidence: fieldConfidence(name, value, pos),
				Source:     fmt.Sprintf("pattern_%d", pos),
			}
			if constants.IsNumericField(name) {
				if v, err := strconv.ParseFloat(value, 64); err == nil {
					f.Numeric = &v
				} else {
					validationErrs = append(validationErrs, fmt.Sprintf("%s: non-numeric value %q", name, value))
					break
				}
			}
			fields[name] = f
			break
		}
	}

	e.logger.Debug("rules.extract.done",
		"document_type", string(dt),
		"fields", len(fields),
		"validation_errors", len(validationErrs),
	)
	return fields, validationErrs
}

// fieldConfidence scores one match: base minus a position penalty (rewards
// the more specific patterns), a bonus for critical fields, and a
// value-quality adjustment. Always clamped to [0.10, 0.95].
func fieldConfidence(name, value string, position int) float32 {
	c := confidenceBase - positionPenalty*float32(position)
	if constants.IsCriticalField(name) {
		c += criticalBonus
	}
	c += qualityAdjustment(name, value)
	return clampConfidence(c)
}

// qualityAdjustment penalizes values outside plausible ranges and gives a
// small boost to values that pass the field-type check.
func qualityAdjustment(name, value string) float32 {
	switch name {
	case constants.FieldTotalHectares:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 || v > 100000 {
			return -implausiblePenalty
		}
		return plausibleBonus
	case constants.FieldParcelCount:
		v, err := strconv.Atoi(value)
		if err != nil || v <= 0 || v > 10000 {
			return -implausiblePenalty
		}
		return plausibleBonus
	case constants.FieldTotalAmount:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 || v > 1e9 {
			return -implausiblePenalty
		}
		return plausibleBonus
	case constants.FieldOwnerName, constants.FieldCompanyName:
		// all-caps shouting or single tokens usually mean a bad capture
		if len(value) < 4 {
			return -implausiblePenalty / 2
		}
		return 0
	}
	return 0
}

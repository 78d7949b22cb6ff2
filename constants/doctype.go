package constants

import (
	"strings"
)

// DocumentType selects the pattern-bank overlay and the AI prompt variant.
type DocumentType string

const (
	Financial     DocumentType = "FINANCIAL"
	Legal         DocumentType = "LEGAL"
	Certification DocumentType = "CERTIFICATION"
	Registration  DocumentType = "REGISTRATION"
	Invoice       DocumentType = "INVOICE"
	FarmGeneric   DocumentType = "FARM_GENERIC"
	Unknown       DocumentType = "UNKNOWN"
)

var allDocumentTypes = []DocumentType{
	Financial,
	Legal,
	Certification,
	Registration,
	Invoice,
	FarmGeneric,
	Unknown,
}

func DocumentTypesAsStrings() []string {
	result := make([]string, len(allDocumentTypes))
	for i, dt := range allDocumentTypes {
		result[i] = string(dt)
	}
	return result
}

// CanonicalizeDocumentType maps free-form labels (upload metadata, user input,
// model output) onto the closed enum. Returns Unknown and false when the label
// is empty or unrecognized.
func CanonicalizeDocumentType(input string) (DocumentType, bool) {
	if input == "" {
		return Unknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	synonyms := map[string]DocumentType{
		"financial":       Financial,
		"finance":         Financial,
		"bank_statement":  Financial,
		"legal":           Legal,
		"contract":        Legal,
		"lease":           Legal,
		"certification":   Certification,
		"certificate":     Certification,
		"bio_certificate": Certification,
		"registration":    Registration,
		"sirene":          Registration,
		"kbis":            Registration,
		"company_registry": Registration,
		"invoice":         Invoice,
		"facture":         Invoice,
		"factura":         Invoice,
		"farm_generic":    FarmGeneric,
		"farm":            FarmGeneric,
		"exploitation":    FarmGeneric,
	}
	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocumentTypes {
		if normalized == strings.ToLower(string(dt)) {
			return dt, dt != Unknown
		}
	}
	return Unknown, false
}

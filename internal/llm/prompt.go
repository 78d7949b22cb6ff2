package llm

import (
	"strings"
	"unicode/utf8"

	"github.com/agrodesk/docextract/constants"
)

// instruction templates per document language. The model is always asked to
// answer with field keys in English (the canonical taxonomy) regardless of
// the document language.
var instructions = map[constants.Language]string{
	constants.LangEN: "You are a parser for agricultural business documents. Read the document text and return ONLY a JSON object with the extracted fields.",
	constants.LangFR: "Tu es un extracteur de documents agricoles. Lis le texte du document et renvoie UNIQUEMENT un objet JSON avec les champs extraits. Les clés JSON restent en anglais.",
	constants.LangRO: "Ești un extractor de documente agricole. Citește textul documentului și returnează DOAR un obiect JSON cu câmpurile extrase. Cheile JSON rămân în engleză.",
	constants.LangES: "Eres un extractor de documentos agrícolas. Lee el texto del documento y devuelve SOLO un objeto JSON con los campos extraídos. Las claves JSON permanecen en inglés.",
	constants.LangDE: "Du bist ein Extraktor für landwirtschaftliche Dokumente. Lies den Dokumenttext und gib NUR ein JSON-Objekt mit den extrahierten Feldern zurück. Die JSON-Schlüssel bleiben auf Englisch.",
}

var docTypeHints = map[constants.DocumentType]string{
	constants.Financial:     "The document is a financial statement; amounts and IBAN matter most.",
	constants.Legal:         "The document is a legal contract; owner, company, and address matter most.",
	constants.Certification: "The document is a certification; registration numbers and dates matter most.",
	constants.Registration:  "The document is a company registration extract; registration number, VAT number, and registered address matter most.",
	constants.Invoice:       "The document is an invoice; totals, currency, and VAT number matter most.",
	constants.FarmGeneric:   "The document describes a farm holding; owner, address, and total hectares matter most.",
}

// BuildSystemPrompt composes the language-specific instruction, the field
// list, and formatting rules.
func BuildSystemPrompt(lang constants.Language, dt constants.DocumentType) string {
	instr, ok := instructions[lang]
	if !ok {
		instr = instructions[constants.DefaultLanguage]
	}

	parts := []string{
		instr,
		"Fields to extract (omit any field not present in the text; never output null or empty strings): " +
			strings.Join(constants.CanonicalFields, ", ") + ".",
		"total_hectares, parcel_count and total_amount must be plain numbers (decimal point, no units).",
		"registration_number and vat_number must be uppercase with no spaces.",
		"crops is a single comma-separated string.",
		"currency must be a 3-letter ISO 4217 code.",
		"You may include a 'confidence' number between 0 and 1 for your own certainty.",
		"Return ONLY the JSON object. No prose, no Markdown fences.",
	}
	if hint, ok := docTypeHints[dt]; ok {
		parts = append(parts, hint)
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the (possibly truncated) document text. The
// returned bool reports whether truncation happened so callers can record it.
func BuildUserPrompt(text string, maxChars int) (string, bool) {
	truncated := false
	if maxChars > 0 && len(text) > maxChars {
		// Back up to a rune boundary so the cut never splits a multi-byte
		// character.
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
		truncated = true
	}

	var b strings.Builder
	b.WriteString("Document text:\n")
	b.WriteString(text)
	if truncated {
		b.WriteString("\n…(truncated)")
	}
	return b.String(), truncated
}

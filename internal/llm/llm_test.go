package llm

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/extract"
)

func TestBuildUserPromptTruncation(t *testing.T) {
	text := strings.Repeat("a", 50)

	prompt, truncated := BuildUserPrompt(text, 10)
	if !truncated {
		t.Fatal("expected truncation to be reported")
	}
	if !strings.Contains(prompt, strings.Repeat("a", 10)) || strings.Contains(prompt, strings.Repeat("a", 11)) {
		t.Fatalf("prompt not cut at 10 chars: %q", prompt)
	}

	_, truncated = BuildUserPrompt(text, 100)
	if truncated {
		t.Fatal("short text must not be reported truncated")
	}
}

func TestBuildUserPromptTruncatesOnRuneBoundary(t *testing.T) {
	// "hectáreas" repeated; á is two bytes, so byte offsets routinely land
	// inside it.
	text := strings.Repeat("hectáreas ", 20)
	for max := 1; max < 40; max++ {
		prompt, truncated := BuildUserPrompt(text, max)
		if !truncated {
			t.Fatalf("maxChars=%d: expected truncation", max)
		}
		if !utf8.ValidString(prompt) {
			t.Fatalf("maxChars=%d: prompt contains invalid UTF-8: %q", max, prompt)
		}
	}
}

func TestBuildSystemPromptLanguageVariants(t *testing.T) {
	fr := BuildSystemPrompt(constants.LangFR, constants.FarmGeneric)
	if !strings.Contains(fr, "extracteur") {
		t.Fatalf("french template not selected: %q", fr)
	}
	// unsupported language falls back to the default template
	def := BuildSystemPrompt(constants.Language("pt"), constants.FarmGeneric)
	en := BuildSystemPrompt(constants.LangEN, constants.FarmGeneric)
	if def != en {
		t.Fatal("unknown language should use the default template")
	}
	for _, name := range constants.CanonicalFields {
		if !strings.Contains(en, name) {
			t.Fatalf("field %s missing from prompt", name)
		}
	}
}

func TestFieldsFromJSON(t *testing.T) {
	data := []byte(`{
		"owner_name": " Jean Dupont ",
		"total_hectares": 85,
		"total_amount": "1234,56",
		"parcel_count": null,
		"email": "",
		"confidence": 0.9,
		"made_up_key": "ignored"
	}`)

	fields, advisory, dropped, err := FieldsFromJSON(data)
	if err != nil {
		t.Fatalf("FieldsFromJSON: %v", err)
	}
	if advisory != 0.9 {
		t.Fatalf("advisory = %v, want 0.9", advisory)
	}

	if f := fields[constants.FieldOwnerName]; f.Value != "Jean Dupont" {
		t.Fatalf("owner_name = %q, want trimmed Jean Dupont", f.Value)
	}
	if f := fields[constants.FieldTotalHectares]; f.Value != "85" || f.Numeric == nil || *f.Numeric != 85 {
		t.Fatalf("total_hectares = %+v, want 85", f)
	}
	if f := fields[constants.FieldTotalAmount]; f.Value != "1234.56" {
		t.Fatalf("total_amount = %q, want decimal comma normalized", f.Value)
	}
	if _, ok := fields[constants.FieldParcelCount]; ok {
		t.Fatal("null field must be dropped")
	}
	if _, ok := fields[constants.FieldEmail]; ok {
		t.Fatal("empty field must be dropped")
	}
	if len(dropped) != 2 {
		t.Fatalf("dropped = %v, want parcel_count and email", dropped)
	}
	for _, f := range fields {
		if f.Source != constants.SourceAIModel {
			t.Fatalf("source = %q, want %q", f.Source, constants.SourceAIModel)
		}
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildFieldJSONSchema()

	ok := []byte(`{"owner_name":"Jean Dupont","total_hectares":85,"confidence":0.8}`)
	if err := ValidateJSONAgainstSchema(schema, ok); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	unknown := []byte(`{"owner_name":"Jean","shoe_size":44}`)
	if err := ValidateJSONAgainstSchema(schema, unknown); err == nil {
		t.Fatal("unknown key should fail additionalProperties=false")
	}

	badConf := []byte(`{"confidence":1.5}`)
	if err := ValidateJSONAgainstSchema(schema, badConf); err == nil {
		t.Fatal("confidence above 1 should be rejected")
	}
}

func TestCoverageConfidence(t *testing.T) {
	mk := func(names ...string) extract.FieldSet {
		fs := make(extract.FieldSet, len(names))
		for _, n := range names {
			fs[n] = extract.Field{Name: n, Value: "x", Source: constants.SourceAIModel}
		}
		return fs
	}

	if got := CoverageConfidence(nil, false); got != 0 {
		t.Fatalf("empty set = %v, want 0", got)
	}

	sparse := CoverageConfidence(mk(constants.FieldEmail), false)
	critical := CoverageConfidence(mk(constants.FieldOwnerName), false)
	if critical <= sparse {
		t.Fatalf("critical coverage should score higher: %v vs %v", critical, sparse)
	}

	base := mk(constants.FieldOwnerName, constants.FieldAddress, constants.FieldTotalHectares)
	legal := mk(constants.FieldOwnerName, constants.FieldAddress, constants.FieldRegistrationNumber)
	if CoverageConfidence(legal, false) <= CoverageConfidence(mk(constants.FieldOwnerName, constants.FieldTotalHectares, constants.FieldCrops), false) {
		t.Fatal("two legal/location fields should earn the bonus")
	}
	_ = base

	clean := CoverageConfidence(base, false)
	ocr := CoverageConfidence(base, true)
	if ocr >= clean {
		t.Fatalf("OCR provenance must penalize: %v vs %v", ocr, clean)
	}

	full := make(extract.FieldSet)
	for _, n := range constants.CanonicalFields {
		full[n] = extract.Field{Name: n, Value: "x"}
	}
	if got := CoverageConfidence(full, false); got > 0.95 {
		t.Fatalf("confidence %v above ceiling", got)
	}
}

package rules

import (
	"reflect"
	"testing"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/extract"
)

func TestExtractFarmGeneric(t *testing.T) {
	e := NewExtractor(nil)
	text := "Owner: Jean Dupont, Address: 12 Rue des Champs, Total area: 85 ha"

	fields, verrs := e.Extract(text, constants.FarmGeneric)
	if len(verrs) != 0 {
		t.Fatalf("unexpected validation errors: %v", verrs)
	}

	owner, ok := fields[constants.FieldOwnerName]
	if !ok || owner.Value != "Jean Dupont" {
		t.Fatalf("owner_name = %+v, want Jean Dupont", owner)
	}
	addr, ok := fields[constants.FieldAddress]
	if !ok || addr.Value != "12 Rue des Champs" {
		t.Fatalf("address = %+v, want 12 Rue des Champs", addr)
	}
	ha, ok := fields[constants.FieldTotalHectares]
	if !ok || ha.Value != "85" {
		t.Fatalf("total_hectares = %+v, want 85", ha)
	}
	if ha.Numeric == nil || *ha.Numeric != 85 {
		t.Fatalf("total_hectares numeric = %v, want 85", ha.Numeric)
	}

	for name, f := range fields {
		if f.Confidence < 0.10 || f.Confidence > 0.95 {
			t.Fatalf("%s confidence %v outside clamp range", name, f.Confidence)
		}
	}
}

func TestExtractFirstMatchWinsPerField(t *testing.T) {
	e := NewExtractor(nil)
	// Both hectares patterns can match; the position-0 labeled form must win
	// and the bare "120 ha" further on must not overwrite it.
	text := "Surface totale: 42,5 ha. Ancienne parcelle de 120 ha."

	fields, _ := e.Extract(text, constants.FarmGeneric)
	ha := fields[constants.FieldTotalHectares]
	if ha.Value != "42.5" {
		t.Fatalf("total_hectares = %q, want 42.5 (decimal comma normalized)", ha.Value)
	}
	if ha.Source != "pattern_0" {
		t.Fatalf("source = %q, want pattern_0", ha.Source)
	}
}

func TestExtractPositionPenalty(t *testing.T) {
	e := NewExtractor(nil)
	labeled, _ := e.Extract("Total area: 30 ha", constants.FarmGeneric)
	bare, _ := e.Extract("the farm spans 30 ha of land", constants.FarmGeneric)

	l := labeled[constants.FieldTotalHectares]
	b := bare[constants.FieldTotalHectares]
	if b.Source != "pattern_1" {
		t.Fatalf("bare match source = %q, want pattern_1", b.Source)
	}
	if l.Confidence <= b.Confidence {
		t.Fatalf("labeled match (%v) should outrank bare match (%v)", l.Confidence, b.Confidence)
	}
}

func TestExtractCleaners(t *testing.T) {
	e := NewExtractor(nil)
	text := "Societate: Agro Verde SRL\n" +
		"CUI: RO 1234567\n" +
		"E-mail: Contact@Agro-Verde.RO.\n" +
		"Tel: +40 (722) 123-456\n" +
		"Total de plată: 1.234,56 lei\n" +
		"Culturi: Grâu, Porumb / Floarea-soarelui\n"

	fields, verrs := e.Extract(text, constants.Invoice)
	if len(verrs) != 0 {
		t.Fatalf("unexpected validation errors: %v", verrs)
	}

	want := map[string]string{
		constants.FieldRegistrationNumber: "1234567",
		constants.FieldEmail:              "contact@agro-verde.ro",
		constants.FieldPhone:              "+40722123456",
		constants.FieldTotalAmount:        "1234.56",
		constants.FieldCurrency:           "RON",
		constants.FieldCrops:              "grâu, porumb, floarea-soarelui",
	}
	for name, wantVal := range want {
		got, ok := fields[name]
		if !ok {
			t.Fatalf("field %s not extracted; have %v", name, fieldNames(fields))
		}
		if got.Value != wantVal {
			t.Errorf("%s = %q, want %q", name, got.Value, wantVal)
		}
	}
}

func TestExtractImplausibleNumericPenalized(t *testing.T) {
	e := NewExtractor(nil)
	plausible, _ := e.Extract("Total area: 85 ha", constants.FarmGeneric)
	absurd, _ := e.Extract("Total area: 2500000 ha", constants.FarmGeneric)

	p := plausible[constants.FieldTotalHectares]
	a, ok := absurd[constants.FieldTotalHectares]
	if !ok {
		t.Fatal("implausible value should be penalized, not dropped")
	}
	if a.Confidence >= p.Confidence {
		t.Fatalf("implausible confidence %v should be below plausible %v", a.Confidence, p.Confidence)
	}
}

func TestExtractIdempotent(t *testing.T) {
	e := NewExtractor(nil)
	text := "Owner: Maria Ionescu, Address: Strada Mare 4, Total area: 12,5 ha, CUI: 9876543"

	first, ferrs := e.Extract(text, constants.FarmGeneric)
	for i := 0; i < 5; i++ {
		again, aerrs := e.Extract(text, constants.FarmGeneric)
		if !reflect.DeepEqual(first, again) || !reflect.DeepEqual(ferrs, aerrs) {
			t.Fatalf("extraction not idempotent on run %d", i)
		}
	}
}

func TestExtractAbsentFieldsOmitted(t *testing.T) {
	e := NewExtractor(nil)
	fields, _ := e.Extract("Owner: Jean Dupont", constants.FarmGeneric)
	if _, ok := fields[constants.FieldEmail]; ok {
		t.Fatal("absent field must be omitted, not present with empty value")
	}
	for name, f := range fields {
		if f.Value == "" {
			t.Fatalf("field %s present with empty value", name)
		}
	}
}

func fieldNames(fs extract.FieldSet) []string {
	names := make([]string, 0, len(fs))
	for name := range fs {
		names = append(names, name)
	}
	return names
}

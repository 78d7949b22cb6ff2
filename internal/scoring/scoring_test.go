package scoring

import (
	"testing"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/extract"
)

func field(name string, conf float32) extract.Field {
	return extract.Field{Name: name, Value: "x", Confidence: conf, Source: "pattern_0"}
}

func TestAggregateEmptyShortCircuits(t *testing.T) {
	if got := Aggregate(extract.FieldSet{}); got != 0 {
		t.Fatalf("Aggregate(empty) = %v, want exactly 0", got)
	}
	if got := Aggregate(nil); got != 0 {
		t.Fatalf("Aggregate(nil) = %v, want exactly 0", got)
	}
}

func TestAggregateCriticalBonus(t *testing.T) {
	withCritical := extract.FieldSet{
		constants.FieldOwnerName: field(constants.FieldOwnerName, 0.8),
		constants.FieldEmail:     field(constants.FieldEmail, 0.8),
	}
	withoutCritical := extract.FieldSet{
		constants.FieldEmail: field(constants.FieldEmail, 0.8),
		constants.FieldPhone: field(constants.FieldPhone, 0.8),
	}

	a := Aggregate(withCritical)
	b := Aggregate(withoutCritical)
	if a <= b {
		t.Fatalf("critical presence should raise overall: with=%v without=%v", a, b)
	}
}

func TestAggregateLowConfidenceCriticalPenalized(t *testing.T) {
	// A critical field below the confidence floor earns the penalty, not
	// the bonus.
	weak := extract.FieldSet{
		constants.FieldOwnerName: field(constants.FieldOwnerName, 0.3),
	}
	strong := extract.FieldSet{
		constants.FieldOwnerName: field(constants.FieldOwnerName, 0.6),
	}
	// relative ordering: 0.3 - 0.1 + bonus vs 0.6 + 0.05 + bonus
	if Aggregate(weak) >= Aggregate(strong) {
		t.Fatal("weak critical field should score below strong critical field")
	}
}

func TestAggregateFieldCountBonusCapped(t *testing.T) {
	small := make(extract.FieldSet)
	large := make(extract.FieldSet)
	for i, name := range constants.CanonicalFields {
		large[name] = field(name, 0.8)
		if i < 5 {
			small[name] = field(name, 0.8)
		}
	}
	diff := Aggregate(large) - Aggregate(small)
	// both have critical fields and identical per-field confidence; only the
	// capped count bonus differs, so the gap is at most the cap itself.
	if diff < 0 || diff > fieldBonusCap {
		t.Fatalf("count bonus not capped: diff=%v cap=%v", diff, fieldBonusCap)
	}
}

func TestAggregateBounded(t *testing.T) {
	fs := make(extract.FieldSet)
	for _, name := range constants.CanonicalFields {
		fs[name] = field(name, 0.95)
	}
	if got := Aggregate(fs); got > 1 {
		t.Fatalf("Aggregate = %v, want <= 1", got)
	}
}

func TestDecisionTriggersAreIndependent(t *testing.T) {
	rich := extract.FieldSet{
		constants.FieldOwnerName:     field(constants.FieldOwnerName, 0.9),
		constants.FieldAddress:       field(constants.FieldAddress, 0.9),
		constants.FieldTotalHectares: field(constants.FieldTotalHectares, 0.9),
		constants.FieldEmail:         field(constants.FieldEmail, 0.9),
	}
	noCritical := extract.FieldSet{
		constants.FieldEmail:    field(constants.FieldEmail, 0.9),
		constants.FieldPhone:    field(constants.FieldPhone, 0.9),
		constants.FieldCurrency: field(constants.FieldCurrency, 0.9),
		constants.FieldIBAN:     field(constants.FieldIBAN, 0.9),
	}

	tests := []struct {
		name      string
		overall   float32
		fields    extract.FieldSet
		threshold float32
		minFields int
		want      EscalateReason
	}{
		{"all satisfied", 0.9, rich, 0.7, 4, ReasonNone},
		{"low confidence alone", 0.5, rich, 0.7, 4, ReasonLowConfidence},
		{"few fields alone", 0.9, rich, 0.7, 5, ReasonFewFields},
		{"no critical alone", 0.9, noCritical, 0.7, 4, ReasonNoCritical},
		{"threshold is caller supplied", 0.75, rich, 0.8, 4, ReasonLowConfidence},
		{"boundary confidence passes", 0.7, rich, 0.7, 4, ReasonNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decision(tt.overall, tt.fields, tt.threshold, tt.minFields)
			if got != tt.want {
				t.Fatalf("Decision = %q, want %q", got, tt.want)
			}
		})
	}
}

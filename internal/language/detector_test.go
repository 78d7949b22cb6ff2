package language

import (
	"testing"

	"github.com/agrodesk/docextract/constants"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.Language
	}{
		{
			name: "romanian company registration",
			text: "AGRO VERDE SRL, CUI 12345678, deține 42 hectare în județul Cluj",
			want: constants.LangRO,
		},
		{
			name: "french farm registration",
			text: "SIRET 552 100 554 00013, exploitation agricole située à Toulouse",
			want: constants.LangFR,
		},
		{
			name: "spanish holding",
			text: "Sociedad agrícola con NIF B12345678, superficie total 30 hectáreas",
			want: constants.LangES,
		},
		{
			name: "french total area only",
			text: "Superficie totale: 12,5 hectares",
			want: constants.LangFR,
		},
		{
			name: "german holding",
			text: "Landwirtschaftlicher Betrieb, HRB 86891, Fläche 25 Hektar",
			want: constants.LangDE,
		},
		{
			name: "plain english",
			text: "Owner: John Smith, total area 85 ha, phone +1 555 0100",
			want: constants.LangEN,
		},
		{
			name: "no diagnostic keywords",
			text: "lorem ipsum dolor sit amet",
			want: constants.LangEN,
		},
		{
			name: "empty input",
			text: "",
			want: constants.LangEN,
		},
		{
			name: "non-linguistic input",
			text: "@@@@ #### 1234 ----",
			want: constants.LangEN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Fatalf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectDeterministic(t *testing.T) {
	text := "SRL CUI hectare SIRET exploitation"
	first := Detect(text)
	for i := 0; i < 10; i++ {
		if got := Detect(text); got != first {
			t.Fatalf("detection not deterministic: %q then %q", first, got)
		}
	}
	// Romanian has priority over French when both sets match.
	if first != constants.LangRO {
		t.Fatalf("priority order broken: got %q, want ro", first)
	}
}

// Package language classifies raw document text into one of the supported
// languages using diagnostic keyword patterns.
package language

import (
	"regexp"

	"github.com/agrodesk/docextract/constants"
)

type rule struct {
	lang constants.Language
	re   *regexp.Regexp
}

// Detection order is fixed: the first language whose diagnostic set matches
// wins. Abbreviations (SRL, SIRET, NIF, HRB) are matched case-sensitively so
// that incidental lowercase words in other languages don't trigger them.
var rules = []rule{
	{constants.LangRO, regexp.MustCompile(`\b(SRL|CUI|ONRC)\b|(?i)\b(hectare?|suprafa[țt][ăa]|jude[țt]|societate|înregistrat|exploata[țt]ie)\b`)},
	{constants.LangFR, regexp.MustCompile(`\b(SIRET|SIREN|TVA)\b|(?i)\b(exploitation|soci[ée]t[ée]|si[èe]ge|agricole|parcelle|superficie totale)\b`)},
	{constants.LangES, regexp.MustCompile(`\b(NIF|CIF)\b|(?i)\b(hect[áa]reas?|explotaci[óo]n|sociedad|agr[íi]cola|superficie total)\b`)},
	{constants.LangDE, regexp.MustCompile(`\b(HRB|USt)\b|(?i)\b(hektar|betrieb|landwirtschaft(lich)?|gesellschaft|fl[äa]che)\b`)},
}

// Detect returns the language of text, defaulting to English when nothing
// matches. Pure function; empty or non-linguistic input resolves to the
// default by design.
func Detect(text string) constants.Language {
	if text == "" {
		return constants.DefaultLanguage
	}
	for _, r := range rules {
		if r.re.MatchString(text) {
			return r.lang
		}
	}
	return constants.DefaultLanguage
}

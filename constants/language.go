package constants

// Language is the closed set of document languages the detector can return.
type Language string

const (
	LangEN Language = "en"
	LangFR Language = "fr"
	LangRO Language = "ro"
	LangES Language = "es"
	LangDE Language = "de"
)

// DefaultLanguage is returned when no diagnostic pattern matches. Empty or
// non-linguistic text resolving here is intentional, not an error.
const DefaultLanguage = LangEN

package constants

// Pipeline defaults. Callers may override any of these per call through the
// injected configuration; nothing in the pipeline reads them implicitly.
const (
	DefaultConfidenceThreshold float32 = 0.7
	DefaultMinFieldCount               = 4
	DefaultMinTextLength               = 20
	DefaultMinLetterRatio      float32 = 0.4
	DefaultMaxPromptChars              = 10000
)

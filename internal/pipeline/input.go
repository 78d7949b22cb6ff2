package pipeline

import (
	"strings"
	"unicode"

	"github.com/agrodesk/docextract/internal/common"
)

// validateInput rejects text that no tier can work with: too short, or
// dominated by non-letter noise (binary artifacts, failed OCR output).
func validateInput(text string, minLength int, minLetterRatio float64) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minLength {
		return common.ErrInputTooShort
	}

	letters := 0
	total := 0
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			letters++
		}
	}
	if total == 0 || float64(letters)/float64(total) < minLetterRatio {
		return common.ErrUnreadableInput
	}
	return nil
}

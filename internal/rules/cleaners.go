package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// cleanName collapses whitespace and strips stray punctuation around a
// person/company name capture.
func cleanName(raw string) (string, error) {
	s := collapseSpaces(strings.Trim(raw, " \t.,;:-"))
	if len(s) < 2 {
		return "", fmt.Errorf("name too short: %q", raw)
	}
	return s, nil
}

func cleanAddress(raw string) (string, error) {
	s := collapseSpaces(strings.Trim(raw, " \t.,;:-"))
	if len(s) < 5 {
		return "", fmt.Errorf("address too short: %q", raw)
	}
	return s, nil
}

// cleanDecimal normalizes decimal-comma numerics ("12,5" -> "12.5").
func cleanDecimal(raw string) (string, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "", fmt.Errorf("not a number: %q", raw)
	}
	return s, nil
}

func cleanInteger(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if _, err := strconv.Atoi(s); err != nil {
		return "", fmt.Errorf("not an integer: %q", raw)
	}
	return s, nil
}

// cleanAmount strips thousand separators and normalizes the decimal mark.
// "1.234,56" and "1,234.56" both become "1234.56".
func cleanAmount(raw string) (string, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma > lastDot: // comma is the decimal mark
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	default: // dot is the decimal mark (or integer)
		s = strings.ReplaceAll(s, ",", "")
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "", fmt.Errorf("not an amount: %q", raw)
	}
	return s, nil
}

func cleanRegistration(raw string) (string, error) {
	s := strings.ToUpper(collapseSpaces(strings.Trim(raw, " \t.,;:-")))
	s = strings.ReplaceAll(s, " ", "")
	if len(s) < 2 {
		return "", fmt.Errorf("registration number too short: %q", raw)
	}
	return s, nil
}

// cleanDate normalizes to ISO-8601. Day-first is assumed for dotted and
// slashed forms, matching the supported locales.
func cleanDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) == 10 && s[4] == '-' && s[7] == '-' {
		return s, nil
	}
	sep := "/"
	if strings.Contains(s, ".") {
		sep = "."
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return "", fmt.Errorf("unrecognized date: %q", raw)
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", fmt.Errorf("unrecognized date: %q", raw)
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("implausible date: %q", raw)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

func cleanEmail(raw string) (string, error) {
	s := strings.Trim(strings.TrimSpace(raw), ".,;:)>(<")
	if !strings.Contains(s, "@") {
		return "", fmt.Errorf("not an email: %q", raw)
	}
	return strings.ToLower(s), nil
}

// cleanPhone keeps digits and a leading plus.
func cleanPhone(raw string) (string, error) {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	s := b.String()
	digits := strings.TrimPrefix(s, "+")
	if len(digits) < 7 || len(digits) > 15 {
		return "", fmt.Errorf("implausible phone: %q", raw)
	}
	return s, nil
}

func cleanIBAN(raw string) (string, error) {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if len(s) < 15 || len(s) > 34 {
		return "", fmt.Errorf("implausible IBAN length: %q", raw)
	}
	return s, nil
}

func cleanCurrency(raw string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "€", "EUR":
		return "EUR", nil
	case "$", "USD":
		return "USD", nil
	case "£", "GBP":
		return "GBP", nil
	case "LEI", "RON":
		return "RON", nil
	case "CHF":
		return "CHF", nil
	}
	return "", fmt.Errorf("unknown currency: %q", raw)
}

// cleanList splits a multi-value capture on commas/slashes, trims each entry,
// and rejoins with a canonical ", ".
func cleanList(raw string) (string, error) {
	split := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '/' || r == ';'
	})
	items := make([]string, 0, len(split))
	for _, it := range split {
		if s := collapseSpaces(strings.TrimSpace(it)); s != "" {
			items = append(items, strings.ToLower(s))
		}
	}
	if len(items) == 0 {
		return "", fmt.Errorf("empty list: %q", raw)
	}
	return strings.Join(items, ", "), nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

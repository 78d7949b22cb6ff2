package llm

import (
	"strings"
)

// StripCodeFences removes a leading/trailing Markdown fence pair when the
// model wrapped its JSON despite instructions.
func StripCodeFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	// drop the optional language tag on the opening fence line
	if nl := strings.IndexByte(t, '\n'); nl >= 0 && !strings.ContainsAny(t[:nl], "{}") {
		t = t[nl+1:]
	}
	if i := strings.LastIndex(t, "```"); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

// FirstJSONObject locates the first balanced {...} span in s, skipping
// braces inside JSON string literals. Returns "" when no balanced object
// exists; callers treat that as a parse failure, never a panic.
func FirstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// ExtractJSONPayload is the defensive path from raw model output to a JSON
// candidate: strip fences first, then take the first balanced object.
func ExtractJSONPayload(raw string) string {
	return FirstJSONObject(StripCodeFences(raw))
}

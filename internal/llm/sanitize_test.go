package llm

import "testing"

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"plain fences", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json language tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.in); got != tt.want {
				t.Fatalf("StripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"leading prose", `Here are the fields: {"a":1} hope that helps`, `{"a":1}`},
		{"nested objects", `{"a":{"b":2}} {"c":3}`, `{"a":{"b":2}}`},
		{"braces inside strings", `{"note":"use { and } carefully"}`, `{"note":"use { and } carefully"}`},
		{"escaped quotes", `{"note":"she said \"hi\" {"}`, `{"note":"she said \"hi\" {"}`},
		{"unbalanced", `{"a":1`, ""},
		{"no object", "no json here", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstJSONObject(tt.in); got != tt.want {
				t.Fatalf("FirstJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSONPayload(t *testing.T) {
	in := "```json\nThe result is {\"owner_name\":\"Jean Dupont\"} as requested\n```"
	want := `{"owner_name":"Jean Dupont"}`
	if got := ExtractJSONPayload(in); got != want {
		t.Fatalf("ExtractJSONPayload = %q, want %q", got, want)
	}
}

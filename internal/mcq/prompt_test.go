package mcq

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt("Some source text.", 5, 1000)
	b := BuildPrompt("Some source text.", 5, 1000)
	if a != b {
		t.Fatal("expected identical output for identical input")
	}
}

func TestBuildPrompt_EmbedsCountAndText(t *testing.T) {
	p := BuildPrompt("The water cycle moves water around Earth.", 7, 1000)
	if !strings.Contains(p, "Generate 7 multiple-choice questions") {
		t.Fatalf("count not embedded: %q", p)
	}
	if !strings.Contains(p, "The water cycle moves water around Earth.") {
		t.Fatalf("source text not embedded: %q", p)
	}
}

func TestBuildPrompt_TruncatesSourceText(t *testing.T) {
	long := strings.Repeat("abcdefghij", 100) // 1000 runes
	p := BuildPrompt(long, 3, 50)
	if strings.Contains(p, long) {
		t.Fatal("expected source text to be truncated")
	}
	if !strings.Contains(p, long[:50]) {
		t.Fatal("expected the first 50 runes to survive")
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"hello", 0, "hello"}, // no cap
		{"hello", -1, "hello"},
		{"héllo", 2, "hé"},
		{"日本語テキスト", 3, "日本語"},
		{"", 5, ""},
	}

	for _, tt := range tests {
		got := truncateRunes(tt.in, tt.limit)
		if got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncateRunes(%q, %d) produced invalid UTF-8", tt.in, tt.limit)
		}
	}
}

func TestSystemPrompt_NamesTheContract(t *testing.T) {
	// The parser and the prompt must agree on the block grammar.
	for _, needle := range []string{BlockDelimiter, "Question:", "A)", "B)", "C)", "D)", "Correct Answer:"} {
		if !strings.Contains(SystemPrompt, needle) {
			t.Errorf("system prompt missing %q", needle)
		}
	}
}

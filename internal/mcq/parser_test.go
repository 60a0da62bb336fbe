package mcq

import (
	"reflect"
	"strings"
	"testing"
)

const wellFormedResponse = `## MCQ
Question: What is 2+2?
A) 3
B) 4
C) 5
D) 22
Correct Answer: B) 4

## MCQ
Question: What color is the sky on a clear day?
A) Green
B) Red
C) Blue
D) Yellow
Correct Answer: C`

func TestParse_WellFormedResponse(t *testing.T) {
	set := Parse(wellFormedResponse)

	if len(set.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(set.Records))
	}
	if set.Dropped != 0 {
		t.Fatalf("expected 0 dropped, got %d", set.Dropped)
	}

	first := set.Records[0]
	if first.Question != "What is 2+2?" {
		t.Errorf("question = %q", first.Question)
	}
	if first.Options != [4]string{"3", "4", "5", "22"} {
		t.Errorf("options = %v", first.Options)
	}
	if first.Answer != LetterB {
		t.Errorf("answer = %q, want B", first.Answer)
	}
	if first.CorrectOption() != "4" {
		t.Errorf("correct option = %q, want 4", first.CorrectOption())
	}

	second := set.Records[1]
	if second.Answer != LetterC {
		t.Errorf("answer = %q, want C", second.Answer)
	}
	if second.CorrectOption() != "Blue" {
		t.Errorf("correct option = %q, want Blue", second.CorrectOption())
	}
}

func TestParse_OptionsInAnyOrder(t *testing.T) {
	raw := `## MCQ
Question: Which planet is largest?
D) Mars
B) Jupiter
A) Earth
C) Venus
Correct Answer: B`

	set := Parse(raw)
	if len(set.Records) != 1 {
		t.Fatalf("expected 1 record, got %d (dropped %d)", len(set.Records), set.Dropped)
	}
	rec := set.Records[0]
	if rec.Options != [4]string{"Earth", "Jupiter", "Venus", "Mars"} {
		t.Fatalf("options = %v", rec.Options)
	}
	if rec.CorrectOption() != "Jupiter" {
		t.Fatalf("correct option = %q", rec.CorrectOption())
	}
}

func TestParse_AnswerNormalization(t *testing.T) {
	tests := []struct {
		value string
		want  Letter
		ok    bool
	}{
		{"B", LetterB, true},
		{"b", LetterB, true},
		{"B)", LetterB, true},
		{"B) 4", LetterB, true},
		{"(C)", LetterC, true},
		{"  d  ", LetterD, true},
		{"E", "", false},
		{"42", "", false},
		{"The second one", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeAnswer(tt.value)
		if ok != tt.ok || got != tt.want {
			t.Errorf("normalizeAnswer(%q) = (%q, %t), want (%q, %t)", tt.value, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParse_DropsMalformedBlocks(t *testing.T) {
	raw := `Here are your questions:

## MCQ
Question: Valid one?
A) 1
B) 2
C) 3
D) 4
Correct Answer: A

## MCQ
Question: Missing option D
A) 1
B) 2
C) 3
Correct Answer: A

## MCQ
A) 1
B) 2
C) 3
D) 4
Correct Answer: A

## MCQ
Question: Bad answer letter
A) 1
B) 2
C) 3
D) 4
Correct Answer: E

## MCQ
Question: Another valid one?
A) 1
B) 2
C) 3
D) 4
Correct Answer: d`

	set := Parse(raw)

	if len(set.Records) != 2 {
		t.Fatalf("expected 2 valid records, got %d", len(set.Records))
	}
	// The preamble plus three malformed blocks.
	if set.Dropped != 4 {
		t.Fatalf("expected 4 dropped, got %d", set.Dropped)
	}
	if set.Blocks() != 6 {
		t.Fatalf("expected 6 candidate blocks, got %d", set.Blocks())
	}

	// Valid records keep response order.
	if set.Records[0].Question != "Valid one?" {
		t.Errorf("first = %q", set.Records[0].Question)
	}
	if set.Records[1].Question != "Another valid one?" {
		t.Errorf("second = %q", set.Records[1].Question)
	}
	if set.Records[1].Answer != LetterD {
		t.Errorf("second answer = %q", set.Records[1].Answer)
	}
}

func TestParse_OptionsBeforeQuestionIgnored(t *testing.T) {
	raw := `## MCQ
A) early
B) early
Question: Late question?
C) 3
D) 4
Correct Answer: C`

	set := Parse(raw)
	if len(set.Records) != 0 {
		t.Fatalf("expected block dropped, got %d records", len(set.Records))
	}
	if set.Dropped != 1 {
		t.Fatalf("expected 1 dropped, got %d", set.Dropped)
	}
}

func TestParse_EmptyAndJunkInput(t *testing.T) {
	for _, raw := range []string{"", "   \n\n  ", "no delimiters here at all"} {
		set := Parse(raw)
		if !set.Empty() {
			t.Errorf("Parse(%q): expected empty set", raw)
		}
	}
}

func TestParse_NeverPanics(t *testing.T) {
	inputs := []string{
		"## MCQ",
		"## MCQ\n## MCQ\n## MCQ",
		"## MCQ\nQuestion:",
		"## MCQ\nQuestion: x\nA)\nB)\nC)\nD)\nCorrect Answer: A",
		"## MCQ\nCorrect Answer: A\nQuestion: reversed?\nA) 1\nB) 2\nC) 3\nD) 4",
		strings.Repeat("## MCQ\n", 1000),
	}
	for _, raw := range inputs {
		_ = Parse(raw) // must not panic
	}
}

func TestParse_AnswerLineBeforeQuestionAccepted(t *testing.T) {
	raw := `## MCQ
Correct Answer: A
Question: Order shuffled?
A) yes
B) no
C) maybe
D) unsure`

	set := Parse(raw)
	if len(set.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(set.Records))
	}
	if set.Records[0].Answer != LetterA {
		t.Fatalf("answer = %q", set.Records[0].Answer)
	}
}

func TestParse_Idempotence(t *testing.T) {
	first := Parse(wellFormedResponse)
	if first.Empty() {
		t.Fatal("fixture did not parse")
	}

	// Rebuild the response from the records' block text, as the transcript
	// artifact does, and parse again.
	var blocks []string
	for _, rec := range first.Records {
		blocks = append(blocks, BlockDelimiter+"\n"+rec.Raw)
	}
	second := Parse(strings.Join(blocks, "\n\n"))

	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Fatalf("reparse mismatch:\nfirst:  %+v\nsecond: %+v", first.Records, second.Records)
	}
}

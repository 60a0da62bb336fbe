package mcq

import (
	"fmt"
	"strings"
)

// SystemPrompt sets the generation contract: delimited blocks in the exact
// line format the parser understands.
const SystemPrompt = `You are an assistant that creates multiple-choice questions (MCQs) from source text.

Rules:
- Every question must be answerable from the provided text alone.
- Write a clear, self-contained question per block.
- Give exactly four answer options labeled A), B), C), D). Exactly one is correct.
- Distractors should be plausible, not absurd.
- Indicate the correct answer on the final line of each block.

Format every block exactly as:
## MCQ
Question: [question]
A) [option A]
B) [option B]
C) [option C]
D) [option D]
Correct Answer: [letter]`

// BuildPrompt renders the user message for a generation request. Source
// text beyond limit runes is cut off; limit <= 0 disables the cap. The
// output is deterministic in its inputs.
func BuildPrompt(text string, count, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple-choice questions from the following text:\n\n", count)
	b.WriteString(truncateRunes(text, limit))
	return b.String()
}

// truncateRunes cuts s to at most limit runes, never splitting a UTF-8
// sequence.
func truncateRunes(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	runes := 0
	for i := range s {
		if runes == limit {
			return s[:i]
		}
		runes++
	}
	return s
}

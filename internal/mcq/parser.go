package mcq

import (
	"strings"
	"unicode"
)

// BlockDelimiter separates question blocks in the model's response.
const BlockDelimiter = "## MCQ"

// Parse splits a model response on the block delimiter and validates each
// candidate block. Malformed blocks are dropped, never fatal: the worst
// possible input yields an empty ResultSet.
func Parse(raw string) ResultSet {
	var set ResultSet

	for _, block := range strings.Split(raw, BlockDelimiter) {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}
		rec, ok := parseBlock(trimmed)
		if !ok {
			set.Dropped++
			continue
		}
		set.Records = append(set.Records, rec)
	}

	return set
}

// parseBlock validates one candidate block. A valid block has a non-empty
// Question line, all four option lines after it in any order, and a
// Correct Answer line that normalizes to a letter A-D.
func parseBlock(block string) (Record, bool) {
	rec := Record{Raw: block}

	var haveQuestion, haveAnswer bool
	var haveOption [4]bool

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case !haveQuestion && strings.HasPrefix(line, "Question:"):
			rec.Question = strings.TrimSpace(strings.TrimPrefix(line, "Question:"))
			haveQuestion = true

		case haveQuestion && isOptionLine(line):
			i := int(line[0] - 'A')
			text := strings.TrimSpace(line[2:])
			if !haveOption[i] && text != "" {
				haveOption[i] = true
				rec.Options[i] = text
			}

		case !haveAnswer && strings.HasPrefix(line, "Correct Answer:"):
			letter, ok := normalizeAnswer(strings.TrimPrefix(line, "Correct Answer:"))
			if !ok {
				return Record{}, false
			}
			rec.Answer = letter
			haveAnswer = true
		}
	}

	if !haveQuestion || rec.Question == "" || !haveAnswer {
		return Record{}, false
	}
	for _, ok := range haveOption {
		if !ok {
			return Record{}, false
		}
	}

	return rec, true
}

// isOptionLine reports whether the line starts with an option label A)-D).
func isOptionLine(line string) bool {
	return len(line) >= 2 && line[0] >= 'A' && line[0] <= 'D' && line[1] == ')'
}

// normalizeAnswer reduces a correct-answer value to its option letter.
// Leading punctuation is skipped; the first letter decides, so "B", "b",
// "B)" and "B) 4" all normalize to LetterB.
func normalizeAnswer(s string) (Letter, bool) {
	for _, r := range strings.TrimSpace(s) {
		if !unicode.IsLetter(r) {
			continue
		}
		u := unicode.ToUpper(r)
		if u >= 'A' && u <= 'D' {
			return Letter(u), true
		}
		return "", false
	}
	return "", false
}

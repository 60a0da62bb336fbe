// Package mcq holds the multiple-choice question domain: the prompt the
// model is asked with, the parser for its delimited response format, and
// the record types the rest of the pipeline consumes.
package mcq

// Letter identifies one of the four answer options.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Index returns the option slot for the letter (A=0 … D=3).
func (l Letter) Index() int {
	if len(l) != 1 || l[0] < 'A' || l[0] > 'D' {
		return -1
	}
	return int(l[0] - 'A')
}

// Record is one validated multiple-choice question.
type Record struct {
	// Question is the question prompt.
	Question string

	// Options holds the four answer options in A-D order.
	Options [4]string

	// Answer is the letter of the correct option.
	Answer Letter

	// Raw is the trimmed source block this record was parsed from, without
	// the block delimiter. Artifact rendering uses it so the model's own
	// block formatting survives serialization.
	Raw string
}

// CorrectOption returns the text of the correct option.
func (r Record) CorrectOption() string {
	if i := r.Answer.Index(); i >= 0 {
		return r.Options[i]
	}
	return ""
}

// ResultSet is the ordered outcome of parsing one model response.
type ResultSet struct {
	// Records holds the valid records in response order.
	Records []Record

	// Dropped counts candidate blocks discarded as malformed.
	Dropped int
}

// Empty reports whether parsing yielded no valid records.
func (s ResultSet) Empty() bool {
	return len(s.Records) == 0
}

// Blocks returns the number of candidate blocks seen, valid or not.
func (s ResultSet) Blocks() int {
	return len(s.Records) + s.Dropped
}

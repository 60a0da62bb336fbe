package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/abhisek/mcqgen/internal/mcq"
)

const canonicalResponse = `## MCQ
Question: What is 2+2?
A) 3
B) 4
C) 5
D) 22
Correct Answer: B) 4

## MCQ
Question: What gas do plants absorb?
A) Oxygen
B) Nitrogen
C) Carbon dioxide
D) Helium
Correct Answer: C`

func TestTranscript_RoundTrip(t *testing.T) {
	set := mcq.Parse(canonicalResponse)
	if len(set.Records) != 2 {
		t.Fatalf("fixture parsed to %d records", len(set.Records))
	}

	transcript := Transcript(set)

	// Canonical input survives serialization byte for byte.
	if string(transcript) != canonicalResponse+"\n" {
		t.Fatalf("transcript diverged from canonical input:\n%s", transcript)
	}

	// And the transcript parses back to the same records.
	again := mcq.Parse(string(transcript))
	if !reflect.DeepEqual(set.Records, again.Records) {
		t.Fatalf("transcript reparse mismatch:\nfirst:  %+v\nsecond: %+v", set.Records, again.Records)
	}
}

func TestTranscript_EmptySet(t *testing.T) {
	transcript := Transcript(mcq.ResultSet{})
	if len(transcript) != 0 {
		t.Fatalf("expected empty transcript, got %q", transcript)
	}
}

func TestDocument_RendersReadablePDF(t *testing.T) {
	set := mcq.Parse(canonicalResponse)

	data, err := Document(set)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not look like a PDF: %q", data[:16])
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("rendered PDF does not parse: %v", err)
	}
	if r.NumPage() < 1 {
		t.Fatal("expected at least one page")
	}

	text, err := r.Page(1).GetPlainText(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "What is 2+2?") {
		t.Fatalf("page text missing question: %q", text)
	}
}

func TestDocument_EmptySetIsWellFormed(t *testing.T) {
	data, err := Document(mcq.ResultSet{})
	if err != nil {
		t.Fatal(err)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("empty document does not parse: %v", err)
	}
	if r.NumPage() != 1 {
		t.Fatalf("expected a single blank page, got %d", r.NumPage())
	}
}

func TestDocument_LongSetPaginates(t *testing.T) {
	var blocks []string
	for i := 0; i < 30; i++ {
		blocks = append(blocks, `## MCQ
Question: Padding question number `+strings.Repeat("x", i)+`?
A) one
B) two
C) three
D) four
Correct Answer: A`)
	}
	set := mcq.Parse(strings.Join(blocks, "\n\n"))
	if len(set.Records) != 30 {
		t.Fatalf("fixture parsed to %d records", len(set.Records))
	}

	data, err := Document(set)
	if err != nil {
		t.Fatal(err)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if r.NumPage() < 2 {
		t.Fatalf("expected automatic page breaks, got %d page(s)", r.NumPage())
	}
}

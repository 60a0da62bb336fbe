package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/mcqgen/internal/mcq"
)

const (
	docFont     = "Arial"
	docFontSize = 12
	docLineH    = 10 // mm per text line
	docBlockGap = 5  // mm between blocks
)

// Document renders the result set as a paginated PDF: one wrapped text
// block per record with a vertical gap between blocks. Page breaks are
// automatic. An empty set renders a well-formed document with one blank
// page.
func Document(set mcq.ResultSet) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont(docFont, "", docFontSize)

	// Core fonts are CP1252; map what we can, drop what we cannot.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, rec := range set.Records {
		doc.MultiCell(0, docLineH, tr(rec.Raw), "", "", false)
		doc.Ln(docBlockGap)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

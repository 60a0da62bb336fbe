// Package render serializes a parsed result set into its two artifact
// forms: a plain-text transcript and a paginated PDF document. Renderers
// are pure; writing the bytes anywhere is the caller's business.
package render

import (
	"strings"

	"github.com/abhisek/mcqgen/internal/mcq"
)

// Transcript serializes the result set as plain text: each record's block
// under its delimiter, blocks separated by one blank line. The output
// parses back to the same records. An empty set yields an empty transcript.
func Transcript(set mcq.ResultSet) []byte {
	if set.Empty() {
		return []byte{}
	}

	var b strings.Builder
	for i, rec := range set.Records {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(mcq.BlockDelimiter)
		b.WriteByte('\n')
		b.WriteString(rec.Raw)
	}
	b.WriteByte('\n')

	return []byte(b.String())
}

package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF reads each page's plain text. Pages that fail to extract or
// carry no text are skipped; the file only fails when every page does.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &DecodeError{Path: path, Err: fmt.Errorf("open pdf: %w", err)}
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		text, err := pageText(r, i)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return "", &EmptyContentError{Path: path, Format: FormatPDF}
	}

	return strings.Join(pages, "\n"), nil
}

// pageText extracts one page. The reader panics on some malformed content
// streams; a panic counts as that page failing, not the whole document.
func pageText(r *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page %d: %v", n, rec)
		}
	}()

	page := r.Page(n)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing", n)
	}
	return page.GetPlainText(nil)
}

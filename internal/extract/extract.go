// Package extract turns uploaded documents into plain text for prompt
// building. Each supported format has its own reader; all of them converge
// on the same contract: non-empty text out, or a classified error.
package extract

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// DetectFormat maps a file's extension to its Format. Unknown extensions
// return an UnsupportedFormatError; this is the upload allow-list.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Format: strings.TrimPrefix(filepath.Ext(path), ".")}
	}
}

// ParseFormat resolves a user-supplied format name. "txt" is accepted as
// an alias for text.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return FormatText, nil
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Format: name}
	}
}

// Extract reads the file at path as the declared format and returns its
// text content. The declared format is trusted; content that does not match
// it surfaces as a DecodeError from the format reader.
func Extract(path string, format Format) (string, error) {
	switch format {
	case FormatText:
		return extractText(path)
	case FormatPDF:
		return extractPDF(path)
	case FormatDOCX:
		return extractDOCX(path)
	default:
		return "", &UnsupportedFormatError{Format: string(format)}
	}
}

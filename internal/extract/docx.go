package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDOCX reads word/document.xml from the ZIP archive and joins the
// text of every paragraph with newlines. Empty paragraphs are kept in the
// join so the source's line structure survives; the file only fails when
// no paragraph carries any text at all.
func extractDOCX(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", &DecodeError{Path: path, Err: fmt.Errorf("open zip: %w", err)}
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", &DecodeError{Path: path, Err: fmt.Errorf("word/document.xml not found in archive")}
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", &DecodeError{Path: path, Err: fmt.Errorf("open document.xml: %w", err)}
	}
	defer rc.Close()

	paragraphs, err := docxParagraphs(xml.NewDecoder(rc))
	if err != nil {
		return "", &DecodeError{Path: path, Err: err}
	}

	text := strings.Join(paragraphs, "\n")
	if len(paragraphs) == 0 || strings.TrimSpace(text) == "" {
		return "", &EmptyContentError{Path: path, Format: FormatDOCX}
	}

	return text, nil
}

// docxParagraphs walks the document token stream collecting the text runs
// of each <w:p> element. Character data only counts inside <w:t> so the
// markup's own whitespace never leaks into the output.
func docxParagraphs(decoder *xml.Decoder) ([]string, error) {
	var paragraphs []string
	var current strings.Builder
	var inParagraph, inText bool

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				if inParagraph {
					inText = true
				}
			case "tab":
				if inParagraph {
					current.WriteByte('\t')
				}
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					inParagraph = false
					paragraphs = append(paragraphs, current.String())
				}
			}
		}
	}

	return paragraphs, nil
}

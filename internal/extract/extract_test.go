package extract

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path   string
		format Format
	}{
		{"doc.txt", FormatText},
		{"doc.TXT", FormatText},
		{"doc.pdf", FormatPDF},
		{"notes.docx", FormatDOCX},
		{"dir/notes.DOCX", FormatDOCX},
	}

	for _, tt := range tests {
		f, err := DetectFormat(tt.path)
		if err != nil {
			t.Errorf("DetectFormat(%q): %v", tt.path, err)
			continue
		}
		if f != tt.format {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, f, tt.format)
		}
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	for _, path := range []string{"file.xyz", "file.md", "file", "archive.zip"} {
		_, err := DetectFormat(path)
		if err == nil {
			t.Errorf("DetectFormat(%q): expected error", path)
			continue
		}
		var unsupported *UnsupportedFormatError
		if !errors.As(err, &unsupported) {
			t.Errorf("DetectFormat(%q): expected UnsupportedFormatError, got %T", path, err)
		}
	}
}

func TestExtract_UnknownFormat(t *testing.T) {
	_, err := Extract("whatever.bin", Format("binary"))
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %T (%v)", err, err)
	}
}

func TestExtractText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")
	os.WriteFile(path, []byte("The mitochondria is the powerhouse of the cell.\n"), 0644)

	text, err := Extract(path, FormatText)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "mitochondria") {
		t.Fatalf("expected text to contain 'mitochondria', got %q", text)
	}
}

func TestExtractText_InvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	os.WriteFile(path, []byte{0xff, 0xfe, 0x41, 0x80}, 0644)

	_, err := Extract(path, FormatText)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	var decode *DecodeError
	if !errors.As(err, &decode) {
		t.Fatalf("expected DecodeError, got %T (%v)", err, err)
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "nope.txt"), FormatText)
	var decode *DecodeError
	if !errors.As(err, &decode) {
		t.Fatalf("expected DecodeError, got %T (%v)", err, err)
	}
}

// writeDocx builds a minimal .docx with the given document.xml body.
func writeDocx(t *testing.T, path, body string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(f)

	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
` + body + `
</w:body>
</w:document>`

	fw, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte(docXML))
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestExtractDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.docx")
	writeDocx(t, path, `<w:p><w:r><w:t>Photosynthesis converts light into energy.</w:t></w:r></w:p>
<w:p><w:r><w:t>It happens in </w:t></w:r><w:r><w:t>chloroplasts.</w:t></w:r></w:p>`)

	text, err := Extract(path, FormatDOCX)
	if err != nil {
		t.Fatal(err)
	}

	want := "Photosynthesis converts light into energy.\nIt happens in chloroplasts."
	if text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
}

func TestExtractDocx_KeepsEmptyParagraphsInJoin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gaps.docx")
	writeDocx(t, path, `<w:p><w:r><w:t>First.</w:t></w:r></w:p>
<w:p></w:p>
<w:p><w:r><w:t>Third.</w:t></w:r></w:p>`)

	text, err := Extract(path, FormatDOCX)
	if err != nil {
		t.Fatal(err)
	}
	if text != "First.\n\nThird." {
		t.Fatalf("text = %q", text)
	}
}

func TestExtractDocx_AllParagraphsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.docx")
	writeDocx(t, path, `<w:p></w:p>
<w:p><w:r><w:t>   </w:t></w:r></w:p>`)

	_, err := Extract(path, FormatDOCX)
	if err == nil {
		t.Fatal("expected error for empty document")
	}
	var empty *EmptyContentError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyContentError, got %T (%v)", err, err)
	}
}

func TestExtractDocx_NotAZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.docx")
	os.WriteFile(path, []byte("this is not a zip archive"), 0644)

	_, err := Extract(path, FormatDOCX)
	var decode *DecodeError
	if !errors.As(err, &decode) {
		t.Fatalf("expected DecodeError, got %T (%v)", err, err)
	}
}

func TestExtractDocx_MissingDocumentPart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hollow.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(f)
	fw, _ := w.Create("word/styles.xml")
	fw.Write([]byte("<styles/>"))
	w.Close()
	f.Close()

	_, err = Extract(path, FormatDOCX)
	var decode *DecodeError
	if !errors.As(err, &decode) {
		t.Fatalf("expected DecodeError, got %T (%v)", err, err)
	}
}

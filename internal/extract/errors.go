package extract

import "fmt"

// UnsupportedFormatError indicates a format outside the supported set
// (text, pdf, docx).
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q", e.Format)
}

// DecodeError indicates the file could not be read or decoded as its
// declared format.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EmptyContentError indicates the file decoded cleanly but yielded no text.
type EmptyContentError struct {
	Path   string
	Format Format
}

func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("no text content in %s file %s", e.Format, e.Path)
}

package extract

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// extractText reads a plain text file and requires it to be valid UTF-8.
func extractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &DecodeError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &DecodeError{Path: path, Err: fmt.Errorf("content is not valid UTF-8")}
	}

	return string(data), nil
}

package pipeline

import "fmt"

// GenerationError classifies a failed model call. Timeout distinguishes a
// deadline hit from every other cause.
type GenerationError struct {
	Cause   error
	Timeout bool
}

func (e *GenerationError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("generation timed out: %v", e.Cause)
	}
	return fmt.Sprintf("generation failed: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// NoValidRecordsError indicates the model responded but no candidate block
// survived validation.
type NoValidRecordsError struct {
	Blocks int
}

func (e *NoValidRecordsError) Error() string {
	return fmt.Sprintf("no valid MCQ records in model response (%d candidate blocks)", e.Blocks)
}

// ArtifactWriteError indicates a rendered artifact could not be produced
// or committed to disk.
type ArtifactWriteError struct {
	Path string
	Err  error
}

func (e *ArtifactWriteError) Error() string {
	return fmt.Sprintf("write artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactWriteError) Unwrap() error { return e.Err }

// Package pipeline orchestrates one document-to-MCQ run: extract, build
// the prompt, call the model once, parse, and commit the two artifacts.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/extract"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/render"
)

// Pipeline turns one source document into a validated MCQ result set plus
// its transcript and PDF artifacts.
type Pipeline struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates a Pipeline. The config is captured by value and never
// mutated afterwards.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{provider: provider, config: cfg, logger: logger}
}

// ResultsDir is the directory committed artifacts are written to.
func (p *Pipeline) ResultsDir() string {
	return p.config.ResultsDir
}

// Result holds the outcome of a successful run.
type Result struct {
	// TranscriptPath is the committed plain-text artifact.
	TranscriptPath string

	// DocumentPath is the committed PDF artifact.
	DocumentPath string

	// Records are the validated questions, in response order. May hold
	// fewer than the requested count; that is still success.
	Records []mcq.Record
}

// Run executes the stages in fixed order. count must be at least 1; that
// is the caller's contract to validate. Artifacts are committed only after
// parsing produced at least one valid record, so a failed run leaves no
// partial output behind.
func (p *Pipeline) Run(ctx context.Context, path string, format extract.Format, count int) (*Result, error) {
	text, err := extract.Extract(path, format)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("document extracted",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("chars", len(text)))

	prompt := mcq.BuildPrompt(text, count, p.config.PromptCharLimit)

	ctx = llm.WithPurpose(ctx, "mcq-generation")
	genCtx, cancel := context.WithTimeout(ctx, p.config.RequestTimeout)
	defer cancel()

	resp, err := p.provider.Generate(genCtx, llm.Request{
		System:      mcq.SystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	})
	if err != nil {
		timeout := errors.Is(err, context.DeadlineExceeded) ||
			errors.Is(genCtx.Err(), context.DeadlineExceeded)
		return nil, &GenerationError{Cause: err, Timeout: timeout}
	}

	set := mcq.Parse(resp.Content)
	if set.Dropped > 0 {
		p.logger.Debug("malformed blocks dropped",
			zap.Int("dropped", set.Dropped),
			zap.Int("kept", len(set.Records)))
	}
	if set.Empty() {
		return nil, &NoValidRecordsError{Blocks: set.Blocks()}
	}

	result, err := p.commitArtifacts(path, set)
	if err != nil {
		return nil, err
	}

	p.logger.Info("pipeline run complete",
		zap.String("source", path),
		zap.Int("requested", count),
		zap.Int("generated", len(result.Records)),
		zap.String("transcript", result.TranscriptPath),
		zap.String("document", result.DocumentPath))

	return result, nil
}

// commitArtifacts renders both artifacts in memory and commits each with a
// temp-file rename, so readers never observe a torn file. If the second
// commit fails the first is rolled back; no partial pair stays visible.
func (p *Pipeline) commitArtifacts(sourcePath string, set mcq.ResultSet) (*Result, error) {
	stem := sourceStem(sourcePath)
	txtPath := filepath.Join(p.config.ResultsDir, TranscriptName(stem))
	pdfPath := filepath.Join(p.config.ResultsDir, DocumentName(stem))

	document, err := render.Document(set)
	if err != nil {
		return nil, &ArtifactWriteError{Path: pdfPath, Err: err}
	}
	transcript := render.Transcript(set)

	if err := os.MkdirAll(p.config.ResultsDir, 0o755); err != nil {
		return nil, &ArtifactWriteError{Path: p.config.ResultsDir, Err: err}
	}
	if err := commitFile(txtPath, transcript); err != nil {
		return nil, &ArtifactWriteError{Path: txtPath, Err: err}
	}
	if err := commitFile(pdfPath, document); err != nil {
		os.Remove(txtPath)
		return nil, &ArtifactWriteError{Path: pdfPath, Err: err}
	}

	return &Result{
		TranscriptPath: txtPath,
		DocumentPath:   pdfPath,
		Records:        set.Records,
	}, nil
}

// TranscriptName returns the transcript artifact name for a source stem.
func TranscriptName(stem string) string {
	return fmt.Sprintf("generated_mcqs_%s.txt", stem)
}

// DocumentName returns the PDF artifact name for a source stem.
func DocumentName(stem string) string {
	return fmt.Sprintf("generated_mcqs_%s.pdf", stem)
}

// sourceStem is the upload's base name without its extension.
func sourceStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// commitFile writes data next to path and renames it into place.
func commitFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

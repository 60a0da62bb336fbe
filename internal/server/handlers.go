package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kennygrant/sanitize"
	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/extract"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/pipeline"
)

type indexData struct {
	MaxQuestions int
	Error        string
}

type resultsData struct {
	Records      []mcq.Record
	TxtName      string
	PDFName      string
	SourceName   string
	RequestCount int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "index.html", indexData{MaxQuestions: s.config.MaxQuestions})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || r.ContentLength > s.config.MaxUploadBytes {
			s.renderError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Upload exceeds the %d MB limit.", s.config.MaxUploadBytes>>20))
			return
		}
		s.renderError(w, http.StatusBadRequest, "Malformed upload request.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.renderError(w, http.StatusBadRequest, "No file part in the request.")
		return
	}
	defer file.Close()

	count, err := parseCount(r.FormValue("num_questions"), s.config.MaxQuestions)
	if err != nil {
		s.renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := sanitize.Name(header.Filename)
	if name == "" || strings.HasPrefix(name, ".") {
		s.renderError(w, http.StatusBadRequest, "Missing or invalid file name.")
		return
	}
	format, err := extract.DetectFormat(name)
	if err != nil {
		s.renderError(w, http.StatusBadRequest,
			"Unsupported file format; upload a .txt, .pdf or .docx document.")
		return
	}

	uploadPath := filepath.Join(s.config.UploadDir, name)
	if err := saveUpload(uploadPath, file); err != nil {
		s.logger.Error("save upload failed", zap.String("path", uploadPath), zap.Error(err))
		s.renderError(w, http.StatusInternalServerError, "Could not store the upload.")
		return
	}

	result, err := s.pipeline.Run(r.Context(), uploadPath, format, count)
	if err != nil {
		status, msg := generateFailure(err)
		s.logger.Warn("generation failed",
			zap.String("upload", name),
			zap.Int("requested", count),
			zap.Error(err))
		s.renderError(w, status, msg)
		return
	}

	s.render(w, http.StatusOK, "results.html", resultsData{
		Records:      result.Records,
		TxtName:      filepath.Base(result.TranscriptPath),
		PDFName:      filepath.Base(result.DocumentPath),
		SourceName:   name,
		RequestCount: count,
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}

	path := filepath.Join(s.pipeline.ResultsDir(), name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// generateFailure maps a pipeline error to an HTTP status and a message
// safe to show the user.
func generateFailure(err error) (int, string) {
	var unsupported *extract.UnsupportedFormatError
	var decode *extract.DecodeError
	var empty *extract.EmptyContentError
	var generation *pipeline.GenerationError
	var noRecords *pipeline.NoValidRecordsError
	var artifact *pipeline.ArtifactWriteError

	switch {
	case errors.As(err, &unsupported):
		return http.StatusBadRequest, "Unsupported file format; upload a .txt, .pdf or .docx document."
	case errors.As(err, &decode):
		return http.StatusBadRequest, "Text extraction failed; the file could not be read."
	case errors.As(err, &empty):
		return http.StatusBadRequest, "Text extraction failed; the document contains no text."
	case errors.As(err, &generation):
		if generation.Timeout {
			return http.StatusGatewayTimeout, "MCQ generation timed out; try again."
		}
		return http.StatusBadGateway, "MCQ generation failed."
	case errors.As(err, &noRecords):
		return http.StatusBadGateway, "The model returned no usable questions; try again."
	case errors.As(err, &artifact):
		return http.StatusInternalServerError, "Could not write the result files."
	default:
		return http.StatusInternalServerError, "An error occurred during MCQ generation."
	}
}

func parseCount(value string, max int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("num_questions is required")
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("num_questions must be a whole number")
	}
	if n < 1 {
		return 0, errors.New("num_questions must be at least 1")
	}
	if n > max {
		return 0, fmt.Errorf("num_questions must be at most %d", max)
	}
	return n, nil
}

func saveUpload(path string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// render executes a page into a buffer first so a template failure never
// emits a half-written response.
func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, page, data); err != nil {
		s.logger.Error("render template failed", zap.String("page", page), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, status int, msg string) {
	s.render(w, status, "index.html", indexData{
		MaxQuestions: s.config.MaxQuestions,
		Error:        msg,
	})
}

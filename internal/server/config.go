package server

import (
	"os"
	"strconv"
)

// Config holds the HTTP server settings.
type Config struct {
	// Addr is the listen address, e.g. ":5000".
	Addr string

	// UploadDir receives uploaded source documents.
	UploadDir string

	// MaxUploadBytes caps the size of a single generate request.
	MaxUploadBytes int64

	// MaxQuestions bounds the num_questions form field.
	MaxQuestions int
}

// DefaultConfig returns the settings used when no environment overrides
// are present.
func DefaultConfig() Config {
	return Config{
		Addr:           ":5000",
		UploadDir:      "uploads",
		MaxUploadBytes: 20 << 20,
		MaxQuestions:   50,
	}
}

// ConfigFromEnv builds a Config from MCQGEN_* environment variables.
// PORT is honored as a fallback listen address for PaaS deploys.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if addr := os.Getenv("MCQGEN_ADDR"); addr != "" {
		cfg.Addr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if d := os.Getenv("MCQGEN_UPLOAD_DIR"); d != "" {
		cfg.UploadDir = d
	}
	if v := os.Getenv("MCQGEN_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("MCQGEN_MAX_QUESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxQuestions = n
		}
	}

	return cfg
}

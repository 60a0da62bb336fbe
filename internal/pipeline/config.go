package pipeline

import (
	"os"
	"strconv"
	"time"
)

// Config controls one pipeline instance. It is built once at process start
// and passed by value; the pipeline never mutates it.
type Config struct {
	// ResultsDir is where committed artifacts land.
	ResultsDir string

	// PromptCharLimit caps the source text embedded in the prompt, in
	// runes. Zero or negative disables the cap.
	PromptCharLimit int

	// RequestTimeout bounds the model call, retries included.
	RequestTimeout time.Duration

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64

	// MaxTokens is the token budget for the model response.
	MaxTokens int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		ResultsDir:      "results",
		PromptCharLimit: 20000,
		RequestTimeout:  120 * time.Second,
		Temperature:     0.7,
		MaxTokens:       8192,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if d := os.Getenv("MCQGEN_RESULTS_DIR"); d != "" {
		cfg.ResultsDir = d
	}
	if v := os.Getenv("MCQGEN_PROMPT_CHAR_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PromptCharLimit = n
		}
	}
	if v := os.Getenv("MCQGEN_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("MCQGEN_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}

	return cfg
}

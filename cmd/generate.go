package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/extract"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate MCQs from a document without the web UI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0])
	},
}

func init() {
	generateCmd.Flags().IntP("count", "n", 5, "Number of questions to generate")
	generateCmd.Flags().String("format", "", "Override format detection: text, pdf or docx")
	generateCmd.Flags().String("out", "", "Directory for result artifacts (overrides MCQGEN_RESULTS_DIR)")
}

func runGenerate(cmd *cobra.Command, path string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	var format extract.Format
	if name, _ := cmd.Flags().GetString("format"); name != "" {
		f, err := extract.ParseFormat(name)
		if err != nil {
			return fmt.Errorf("unknown format %q: use text, pdf or docx", name)
		}
		format = f
	} else {
		f, err := extract.DetectFormat(path)
		if err != nil {
			return fmt.Errorf("cannot detect format of %q: use --format", path)
		}
		format = f
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProviderFromEnv(ctx, logger)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	cfg := pipeline.ConfigFromEnv()
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.ResultsDir = out
	}

	result, err := pipeline.New(provider, cfg, logger).Run(ctx, path, format, count)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d question(s)\n", len(result.Records))
	fmt.Println(result.TranscriptPath)
	fmt.Println(result.DocumentPath)
	return nil
}

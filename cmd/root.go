package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "mcqgen",
	Short: "Generate multiple-choice questions from documents",
	Long:  "mcqgen turns .txt, .pdf and .docx documents into multiple-choice questions using an LLM, served over a small web UI or from the command line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger. MCQGEN_DEBUG switches to the
// human-readable development encoder with debug level enabled.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("MCQGEN_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

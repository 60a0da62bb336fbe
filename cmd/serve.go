package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/pipeline"
	"github.com/abhisek/mcqgen/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCQ generator web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MCQGEN_ADDR and PORT)")
	serveCmd.Flags().String("results", "", "Directory for result artifacts (overrides MCQGEN_RESULTS_DIR)")
	serveCmd.Flags().String("uploads", "", "Directory for uploaded documents (overrides MCQGEN_UPLOAD_DIR)")
}

// runServe wires provider, pipeline and server together and blocks until
// the process receives an interrupt.
func runServe(cmd *cobra.Command) error {
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

	pipeCfg := pipeline.ConfigFromEnv()
	if dir, _ := cmd.Flags().GetString("results"); dir != "" {
		pipeCfg.ResultsDir = dir
	}
	p := pipeline.New(provider, pipeCfg, logger)

	srvCfg := server.ConfigFromEnv()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		srvCfg.Addr = addr
	}
	if dir, _ := cmd.Flags().GetString("uploads"); dir != "" {
		srvCfg.UploadDir = dir
	}

	srv, err := server.New(p, srvCfg, logger)
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}
	return srv.Start(ctx)
}

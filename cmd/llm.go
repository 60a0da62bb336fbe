package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the configured LLM provider",
}

var llmProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Send a test request to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		provider, err := llm.NewProviderFromEnv(ctx, zap.NewNop())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		start := time.Now()
		resp, err := provider.Generate(llm.WithPurpose(ctx, "probe"), llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: "Reply with the single word: ready"},
			},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("probe failed: %w", err)
		}

		fmt.Println("Provider OK")
		fmt.Printf("Model:     %s\n", resp.Model)
		fmt.Printf("Latency:   %dms\n", time.Since(start).Milliseconds())
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		if cost := llm.LookupCost(resp.Model); cost != nil {
			fmt.Printf("Cost:      %s\n", formatCost(cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
		fmt.Printf("Response:  %s\n", strings.TrimSpace(resp.Content))
		return nil
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmCmd.AddCommand(llmProbeCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/empatlab/cnvcoach/internal/content"
	"github.com/empatlab/cnvcoach/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM provider configuration",
}

var llmTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Probe connectivity to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := buildLogger(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), logger)
		if err != nil {
			provider = nil
		}

		client := content.NewClient(provider, content.DefaultConfig())
		result := client.TestConnection(cmd.Context())

		if result.OK {
			fmt.Printf("✓ %s\n", result.Message)
			return nil
		}

		fmt.Printf("✗ %s (%s)\n", result.Message, result.Kind)
		fmt.Println("Sessions will run with built-in scenarios until this is resolved.")
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmTestCmd)
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/empatlab/cnvcoach/internal/content"
	"github.com/empatlab/cnvcoach/internal/llm"
	"github.com/empatlab/cnvcoach/internal/tui"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Start a training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrain(cmd)
	},
}

// runTrain builds the provider and launches the session TUI. A missing
// credential is not an error: the session runs on fallback content.
func runTrain(cmd *cobra.Command) error {
	logger, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	provider, err := llm.NewProviderFromEnv(cmd.Context(), logger)
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			return fmt.Errorf("LLM provider: %w", err)
		}
		fmt.Fprintln(os.Stderr, "No API key configured. Running with built-in scenarios.")
		provider = nil
	}

	client := content.NewClient(provider, content.DefaultConfig())
	return tui.Run(client, logger)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "cnvcoach",
	Short: "AI role-play trainer for workplace communication",
	Long:  "CNV Coach is a terminal trainer that runs role-play scenarios built on Non-Violent Communication, with AI-generated content and built-in fallbacks.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env next to the binary; absence is fine.
		_ = gotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrain(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Log LLM requests and session events to stderr")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildLogger returns a development logger when --verbose is set, a nop
// logger otherwise.
func buildLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

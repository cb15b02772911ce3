package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/empatlab/cnvcoach/internal/content"
	"github.com/empatlab/cnvcoach/internal/fault"
	"github.com/empatlab/cnvcoach/internal/llm"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate and print scenarios without running a session",
	Long: `Generate scenarios for a synthetic profile and print them with their
options labeled by style.

This is a stateless developer tool for evaluating generation quality and
prompt changes. Nothing is scored or recorded.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("name", "Alex", "Trainee name embedded in the prompt")
	previewCmd.Flags().Bool("knows-cnv", false, "Mark the profile as familiar with NVC")
	previewCmd.Flags().Int("count", 3, "Number of scenarios to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	knowsCNV, _ := cmd.Flags().GetBool("knows-cnv")
	count, _ := cmd.Flags().GetInt("count")

	logger, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	provider, err := llm.NewProviderFromEnv(cmd.Context(), logger)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	cfg := content.DefaultConfig()
	cfg.ScenarioCount = count
	client := content.NewClient(provider, cfg)

	profile := content.UserProfile{Name: name, KnowsCNV: knowsCNV}

	fmt.Printf("Generating %d scenarios for %q...\n\n", count, name)

	scenarios, err := client.RequestScenarios(cmd.Context(), profile)
	if err != nil {
		return fmt.Errorf("generation failed (%s): %w", fault.KindOf(err), err)
	}

	for i, s := range scenarios {
		fmt.Printf("── Scenario %d/%d ──\n", i+1, len(scenarios))
		fmt.Println(s.Situation)
		fmt.Println()
		for _, kind := range content.AllKinds {
			fmt.Printf("  [%s, %d pts] %s\n", kind, content.PointsFor(kind), s.Options[kind])
		}
		fmt.Println()
	}

	return nil
}

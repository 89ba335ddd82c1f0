package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/infinitelife/pulse/internal/llm"
	"github.com/infinitelife/pulse/internal/summary"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate the AI self-discovery summary from stored answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := resolveSubject(cmd)
		if sub.Anonymous() {
			return fmt.Errorf("a verified token is required: guests have no stored answers")
		}

		cfg, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM API key found: set PULSE_ANTHROPIC_API_KEY, PULSE_OPENAI_API_KEY, PULSE_GEMINI_API_KEY or PULSE_OPENROUTER_API_KEY")
		}

		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProvider(cmd.Context(), cfg, st.EventRepo())
		if err != nil {
			return err
		}

		gen := summary.NewGenerator(eng.Catalog(), provider, st.StateRepo())
		res, err := gen.Generate(cmd.Context(), sub, nil)
		if err != nil {
			return err
		}

		printSummary(res.Summary)
		if res.StorageErr != nil {
			fmt.Printf("warning: summary not persisted: %v\n", res.StorageErr)
		}
		return nil
	},
}

func printSummary(s *summary.Summary) {
	fmt.Println(s.Title)
	fmt.Println()
	fmt.Println(s.OverallSummary)
	for _, ins := range s.KeyInsights {
		fmt.Println()
		fmt.Printf("* %s\n  %s\n", ins.Title, ins.Description)
	}
	for _, step := range s.ActionableSteps {
		fmt.Println()
		fmt.Printf("[%s] %s\n  First step: %s\n", step.Pillar, step.Recommendation, step.FirstStep)
	}
}

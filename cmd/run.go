package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/infinitelife/pulse/internal/app"
	"github.com/infinitelife/pulse/internal/llm"
	"github.com/infinitelife/pulse/internal/summary"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive questionnaire",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	eng, st, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := app.Options{
		Engine:  eng,
		Subject: resolveSubject(cmd),
	}

	// LLM provider is optional; the questionnaire works without it.
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The self-discovery summary will be unavailable.")
		} else {
			opts.Generator = summary.NewGenerator(eng.Catalog(), provider, st.StateRepo())
		}
	} else {
		fmt.Fprintln(os.Stderr, "No LLM API key found; the self-discovery summary will be unavailable.")
	}

	return app.Run(opts)
}

package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/engine"
	"github.com/infinitelife/pulse/internal/scoring"
)

var answerCmd = &cobra.Command{
	Use:   "answer <question-id> <value>",
	Short: "Submit one answer and print the resulting state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := eng.SubmitAnswer(cmd.Context(), resolveSubject(cmd), args[0], parseAnswer(args[1]), nil)
		if err != nil {
			if rej, ok := engine.AsRejection(err); ok {
				return fmt.Errorf("%s", rej.Msg)
			}
			return err
		}

		printSnapshot(eng.Catalog(), snap)
		return nil
	},
}

// parseAnswer treats a numeric value as a slider rating and anything
// else as text (yes/no answers, choice keys).
func parseAnswer(raw string) scoring.Answer {
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return scoring.Number(v)
	}
	return scoring.Text(strings.ToLower(strings.TrimSpace(raw)))
}

// printSnapshot writes the engine snapshot in a scripting-friendly form.
func printSnapshot(cat *catalog.Catalog, snap *engine.Snapshot) {
	if snap.Completed {
		fmt.Println("position: completed")
	} else if snap.NextQuestion != nil {
		pos, _ := cat.FlowPosition(snap.NextQuestion.ID)
		fmt.Printf("position: %s (%d of %d)\n", snap.NextQuestion.ID, pos+1, cat.FlowLen())
		fmt.Printf("question: %s\n", snap.NextQuestion.Text)
	}
	if snap.SkippedFrom != "" {
		fmt.Printf("skipped-from: %s\n", snap.SkippedFrom)
	}

	ids := make([]string, 0, len(snap.SectionScores))
	for id := range snap.SectionScores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		suffix := ""
		if snap.CompletedSections[id] {
			suffix = " (completed)"
		}
		fmt.Printf("section %s: %.1f%s\n", id, snap.SectionScores[id], suffix)
	}

	for _, p := range catalog.AllPillars() {
		fmt.Printf("pillar %s: %.0f%%\n", p, snap.PillarProgress[p])
	}

	if snap.StorageErr != nil {
		fmt.Printf("warning: state not persisted: %v\n", snap.StorageErr)
	}
}

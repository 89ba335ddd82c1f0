package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/infinitelife/pulse/internal/engine"
	"github.com/infinitelife/pulse/internal/scoring"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a full answer set in one call",
	Long: "Reads a JSON object mapping question IDs to answers and stores it as\n" +
		"the user's progress, positioned after the latest answered question.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("answers")
		if path == "" {
			return fmt.Errorf("--answers is required")
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read answers file: %w", err)
		}
		var answers scoring.AnswerSet
		if err := json.Unmarshal(raw, &answers); err != nil {
			return fmt.Errorf("parse answers file: %w", err)
		}

		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := eng.SaveBulkProgress(cmd.Context(), resolveSubject(cmd), answers)
		if err != nil {
			if rej, ok := engine.AsRejection(err); ok {
				return fmt.Errorf("%s", rej.Msg)
			}
			return err
		}

		fmt.Printf("saved %d answers\n", len(snap.Answers))
		printSnapshot(eng.Catalog(), snap)
		return nil
	},
}

func init() {
	saveCmd.Flags().String("answers", "", "Path to a JSON file of question-id to answer")
}

package cmd

import (
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the current questionnaire state",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := eng.CurrentState(cmd.Context(), resolveSubject(cmd))
		if err != nil {
			return err
		}

		printSnapshot(eng.Catalog(), snap)
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/infinitelife/pulse/internal/engine"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored questionnaire state",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.Reset(cmd.Context(), resolveSubject(cmd)); err != nil {
			if rej, ok := engine.AsRejection(err); ok {
				return fmt.Errorf("%s", rej.Msg)
			}
			return err
		}

		fmt.Println("stored state deleted")
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/infinitelife/pulse/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalog artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("catalog")

		var cat *catalog.Catalog
		if path == "" {
			cat = catalog.Builtin()
			fmt.Println("validating built-in catalog")
		} else {
			var err error
			cat, err = catalog.LoadFile(path)
			if err != nil {
				return err
			}
		}

		sections := 0
		for _, p := range catalog.AllPillars() {
			sections += len(cat.SectionsOfPillar(p))
		}
		fmt.Printf("catalog %s: %d questions, %d sections — ok\n",
			cat.Version(), cat.FlowLen(), sections)
		return nil
	},
}

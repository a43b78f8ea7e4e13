package cmd

import (
	"fmt"

	"github.com/encodeous/hopsim/state"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect <topology>",
	Aliases: []string{"i"},
	Short:   "Prints every router of a topology",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := state.LoadRegistry(args[0])
		if err != nil {
			return err
		}
		for _, r := range reg.Routers() {
			fmt.Fprint(cmd.OutOrStdout(), r.Render())
		}
		return nil
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/encodeous/hopsim/state"
	"github.com/spf13/cobra"
)

var overwrite = false

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to>",
	Short: "Converts a topology between the line format and yaml, picked by file extension",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := state.ReadTopology(args[0])
		if err != nil {
			return err
		}
		if err := state.PathValidator(args[1]); err != nil {
			return err
		}
		if _, err := os.Stat(args[1]); err == nil && !overwrite {
			return fmt.Errorf("%s already exists, use --force to overwrite it", args[1])
		}
		return state.WriteTopology(args[1], cfg)
	},
	GroupID: "cfg",
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVarP(&overwrite, "force", "f", false, "overwrite the destination")
}

package cmd

import (
	"fmt"

	"github.com/encodeous/hopsim/state"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <topology>",
	Short: "Checks that a topology file can be loaded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := state.ReadTopology(args[0])
		if err != nil {
			return err
		}
		cfgYaml, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Topology is valid")
		fmt.Fprint(cmd.OutOrStdout(), string(cfgYaml))
		return nil
	},
	GroupID: "cfg",
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

package cmd

import (
	"os"

	"github.com/encodeous/hopsim/core"
	"github.com/spf13/cobra"
)

var savePath string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [topology]",
	Short: "Run an interactive simulation",
	Long: `Loads the topology file, if given, and reads commands from stdin.
A topology that cannot be loaded is discarded entirely and the simulation starts empty.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := core.SimCfg{
			LogPath:       logPath,
			LogLevel:      logLevel(),
			In:            os.Stdin,
			Out:           os.Stdout,
			LogOut:        os.Stderr,
			Interactive:   core.IsTerminal(os.Stdin),
			HandleSignals: true,
			SavePath:      savePath,
		}
		if len(args) == 1 {
			cfg.TopologyPath = args[0]
		}
		return core.Start(cmd.Context(), cfg)
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&savePath, "save", "", "write the final topology to this file on exit")
}

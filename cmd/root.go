package cmd

import (
	"log/slog"
	"os"

	"github.com/encodeous/hopsim/state"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hopsim",
	Short: "Distance-vector route propagation simulator",
	Long: `hopsim simulates how routing tables change when routers advertise them to their neighbours.
Each send is a single hop, and a router keeps the first route it hears for a network.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sim",
		Title: "Simulation Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cfg",
		Title: "Topology Commands",
	})
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-path", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&state.DBG_log_router, "lroute", "r", false, "Write router events to console")
	rootCmd.PersistentFlags().BoolVar(&state.DBG_debug, "debug", false, "Serve metrics on the debug address")
	rootCmd.PersistentFlags().StringVar(&state.DebugAddr, "debug-addr", state.DefaultDebugAddr, "address for the debug http server")
}

package cmd

import (
	"os"

	"github.com/ptgen/ptgen/state"
	"github.com/spf13/cobra"
)

var verbose = false

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ptgen",
	Short: "Router configuration generator",
	Long: `ptgen turns a topology of devices and point-to-point links into per-device configuration.
Host addresses and interface numbers are assigned automatically from each link's block.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "init",
		Title: "Edit Topology",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "gen",
		Title: "Generate Configuration",
	})
	rootCmd.PersistentFlags().StringVarP(&state.TopologyPath, "topology", "t", state.TopologyPath, "topology document")
	rootCmd.PersistentFlags().StringVar(&state.LogPath, "log-path", state.LogPath, "if not empty, logs are also written to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

package cmd

import (
	"github.com/ptgen/ptgen/core"
	"github.com/ptgen/ptgen/state"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Compile every device of the topology and write one configuration file per device",
	Run: func(cmd *cobra.Command, args []string) {
		log, done := newLogger()
		defer done()

		rip, _ := cmd.Flags().GetStringSlice("rip")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		_, err := core.Generate(core.Options{
			TopologyPath: state.TopologyPath,
			OutputDir:    state.OutputDir,
			Rip:          rip,
			DryRun:       dryRun,
		}, log)
		if err != nil {
			panic(err)
		}
	},
	GroupID: "gen",
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&state.OutputDir, "output", "o", state.OutputDir, "output directory")
	generateCmd.Flags().StringSlice("rip", nil, "additional devices to enable RIP towards")
	generateCmd.Flags().BoolP("dry-run", "n", false, "compile without writing any file")
}

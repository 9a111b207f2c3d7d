package cmd

import (
	"fmt"

	"github.com/ptgen/ptgen/state"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the topology document without writing anything",
	Run: func(cmd *cobra.Command, args []string) {
		log, done := newLogger()
		defer done()

		top := loadTopology(nil, log)
		fmt.Printf("Topology is valid: %d devices, %d links\n", top.Registry.Len(), top.Links.Len())
		for _, block := range state.OverlappingBlocks(top.Links.Blocks()) {
			fmt.Printf("warning: %s overlaps another link\n", block)
		}
	},
	GroupID: "gen",
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ptgen/ptgen/core"
	"github.com/ptgen/ptgen/state"
	"github.com/spf13/cobra"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Generates a static hosts override naming every assigned interface address",
	Run: func(cmd *cobra.Command, args []string) {
		log, done := newLogger()
		defer done()

		top := loadTopology(nil, log)
		fmt.Print(renderHosts(top))
	},
	GroupID: "gen",
}

// renderHosts maps each interface address to <device>-gi<N>, sorted by address
func renderHosts(top *state.Topology) string {
	hosts := make(map[string][]string)
	for _, id := range top.Registry.Devices() {
		direct, err := core.DirectLinks(top.Links, id)
		if err != nil {
			panic(err)
		}
		for _, dl := range direct {
			ip := dl.CloseAddr.Addr().String()
			hosts[ip] = append(hosts[ip], fmt.Sprintf("%s-gi%d", top.Registry.Name(id), dl.CloseIface))
		}
	}
	sb := strings.Builder{}
	for _, ip := range slices.SortedFunc(maps.Keys(hosts), compareAddrStrings) {
		sb.WriteString(ip)
		for _, name := range slices.Sorted(slices.Values(hosts[ip])) {
			sb.WriteString(fmt.Sprintf("\t%s", name))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(hostsCmd)
}

package cmd

import (
	"fmt"

	"github.com/ptgen/ptgen/core"
	"github.com/ptgen/ptgen/state"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type linkView struct {
	Iface     string  `yaml:"iface"`
	Neighbour string  `yaml:"neighbour"`
	Address   string  `yaml:"address"`
	Remote    string  `yaml:"remote"`
	Area      *uint32 `yaml:"area,omitempty"`
	Rip       bool    `yaml:"rip,omitempty"`
}

type summaryView struct {
	Devices []string `yaml:"devices"`
	Rip     []string `yaml:"rip,omitempty"`
	Links   int      `yaml:"links"`
	Blocks  []string `yaml:"blocks"`
}

var inspectCmd = &cobra.Command{
	Use:     "inspect [device]",
	Aliases: []string{"i"},
	Short:   "Inspects the compiled topology, or a single device",
	Run: func(cmd *cobra.Command, args []string) {
		log, done := newLogger()
		defer done()

		rip, _ := cmd.Flags().GetStringSlice("rip")
		top := loadTopology(rip, log)

		if len(args) == 0 {
			summary := summaryView{
				Rip:   top.RipNames(),
				Links: top.Links.Len(),
			}
			for _, id := range top.Registry.Devices() {
				summary.Devices = append(summary.Devices, top.Registry.Name(id))
			}
			for _, block := range state.CoalescePrefix(top.Links.Blocks()) {
				summary.Blocks = append(summary.Blocks, block.String())
			}
			printYaml(summary)
			return
		}

		id, err := top.Registry.LookupByName(args[0])
		if err != nil {
			panic(err)
		}
		if links, _ := cmd.Flags().GetBool("links"); links {
			direct, err := core.DirectLinks(top.Links, id)
			if err != nil {
				panic(err)
			}
			views := make([]linkView, 0, len(direct))
			for _, dl := range direct {
				_, isRip := top.RipEnabled[dl.Far]
				views = append(views, linkView{
					Iface:     fmt.Sprintf("%s%d/0", state.InterfacePrefix, dl.CloseIface),
					Neighbour: top.Registry.Name(dl.Far),
					Address:   dl.CloseAddr.String(),
					Remote:    dl.FarAddr.String(),
					Area:      dl.Area,
					Rip:       isRip,
				})
			}
			printYaml(views)
			return
		}

		text, err := core.CompileDevice(top.Registry, top.Links, top.RipEnabled, id)
		if err != nil {
			panic(err)
		}
		fmt.Print(text)
	},
	GroupID: "gen",
}

func printYaml(v any) {
	out, err := yaml.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Print(string(out))
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolP("links", "l", false, "print the device's links instead of its configuration")
	inspectCmd.Flags().StringSlice("rip", nil, "additional devices to enable RIP towards")
}

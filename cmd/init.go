package cmd

import (
	"fmt"
	"net/netip"

	"github.com/ptgen/ptgen/state"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a topology document",
	Run: func(cmd *cobra.Command, args []string) {
		doc := &state.TopologyDoc{}
		path := state.TopologyPath

		if res, _ := cmd.Flags().GetBool("skip"); res {
			_ = doc.AddDevice("R1", state.DeviceSpec{})
			_ = doc.AddDevice("R2", state.DeviceSpec{})
			area := uint32(0)
			doc.SetLink(state.LinkSpec{R1: "R1", R2: "R2", IP: netip.MustParsePrefix("10.0.0.0/30"), Ospf: &area})
			goto Save
		}

		fmt.Println("Topology Wizard")
		fmt.Println("Name each device, leave empty when done:")
		for {
			name := promptDefaultStr("device", "", optional(state.NameValidator))
			if name == "" {
				break
			}
			err := doc.AddDevice(name, state.DeviceSpec{})
			if err != nil {
				fmt.Println(err)
			}
		}

		fmt.Println("Describe each link as \"r1 r2 cidr [ospf area]\", leave empty when done:")
		for {
			line := promptDefaultStr("link", "", optional(func(s string) error {
				_, err := parseLinkLine(s)
				return err
			}))
			if line == "" {
				break
			}
			spec, _ := parseLinkLine(line)
			doc.SetLink(spec)
		}
		if err := state.TopologyValidator(doc); err != nil {
			panic(err)
		}

		path = safeSaveFile(path, "Topology")

	Save:
		err := state.SaveTopology(path, doc)
		if err != nil {
			panic(err)
		}
	},
	GroupID: "init",
}

var addDeviceCmd = &cobra.Command{
	Use:   "add-device [name]",
	Short: "Add a device to the topology",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := loadDoc()
		x, _ := cmd.Flags().GetFloat64("x")
		y, _ := cmd.Flags().GetFloat64("y")
		rip, _ := cmd.Flags().GetBool("rip")
		redistribute, _ := cmd.Flags().GetBool("ospf-to-rip")
		err := doc.AddDevice(args[0], state.DeviceSpec{
			X:               x,
			Y:               y,
			Rip:             rip,
			Redistributions: state.RedistributionCfg{OspfToRip: redistribute},
		})
		if err != nil {
			panic(err)
		}
		saveDoc(doc)
	},
	GroupID: "init",
}

var linkCmd = &cobra.Command{
	Use:   "link [r1] [r2] [cidr]",
	Short: "Connect two devices, replacing any existing link between them",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		doc := loadDoc()
		block, err := netip.ParsePrefix(args[2])
		if err != nil {
			panic(err)
		}
		spec := state.LinkSpec{R1: args[0], R2: args[1], IP: block}
		if cmd.Flags().Changed("ospf") {
			area, _ := cmd.Flags().GetUint32("ospf")
			spec.Ospf = &area
		}
		doc.SetLink(spec)
		// reject the edit before it reaches the file
		if _, err := doc.Build(nil, nil); err != nil {
			panic(err)
		}
		saveDoc(doc)
	},
	GroupID: "init",
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink [r1] [r2]",
	Short: "Disconnect two devices",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if args[0] == args[1] {
			panic(fmt.Errorf("%w: %s", state.ErrDuplicateEndpoint, args[0]))
		}
		doc := loadDoc()
		if !doc.RemoveLink(args[0], args[1]) {
			fmt.Printf("%s and %s are not linked\n", args[0], args[1])
			return
		}
		saveDoc(doc)
	},
	GroupID: "init",
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().BoolP("skip", "s", false, "Skip the wizard and write a two-device sample")

	rootCmd.AddCommand(addDeviceCmd)
	addDeviceCmd.Flags().Float64("x", 0, "editor x coordinate")
	addDeviceCmd.Flags().Float64("y", 0, "editor y coordinate")
	addDeviceCmd.Flags().Bool("rip", false, "neighbours advertise their links to this device over RIP")
	addDeviceCmd.Flags().Bool("ospf-to-rip", false, "redistribute RIP routes into OSPF")

	rootCmd.AddCommand(linkCmd)
	linkCmd.Flags().Uint32("ospf", 0, "OSPF area of the link")

	rootCmd.AddCommand(unlinkCmd)
}

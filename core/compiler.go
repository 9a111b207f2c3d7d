package core

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/ptgen/ptgen/state"
)

// Compile renders the configuration of every registered device, keyed by device name.
// ripEnabled holds the devices towards which neighbours advertise their links over RIP.
func Compile(reg *state.Registry, links *state.LinkTable, ripEnabled map[state.DeviceId]struct{}) (map[string]string, error) {
	out := make(map[string]string, reg.Len())
	for _, id := range reg.Devices() {
		text, err := CompileDevice(reg, links, ripEnabled, id)
		if err != nil {
			return nil, err
		}
		out[reg.Name(id)] = text
	}
	return out, nil
}

// DirectLinks returns every link of id seen from id, ordered by local interface index
func DirectLinks(links *state.LinkTable, id state.DeviceId) ([]state.DirectedLink, error) {
	out := make([]state.DirectedLink, 0)
	for _, far := range links.NeighboursOf(id) {
		dl, ok, err := links.LookupOriented(id, far)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, dl)
		}
	}
	slices.SortFunc(out, func(a, b state.DirectedLink) int {
		return cmp.Compare(a.CloseIface, b.CloseIface)
	})
	return out, nil
}

func CompileDevice(reg *state.Registry, links *state.LinkTable, ripEnabled map[state.DeviceId]struct{}, id state.DeviceId) (string, error) {
	dev := reg.Get(id)
	if dev == nil {
		return "", fmt.Errorf("%w: %v", state.ErrUnknownDevice, id)
	}
	direct, err := DirectLinks(links, id)
	if err != nil {
		return "", fmt.Errorf("%s: %w", dev.Name, err)
	}

	sb := strings.Builder{}
	sb.WriteString("enable\n")
	sb.WriteString("configure terminal\n\n")

	for _, dl := range direct {
		writeInterface(&sb, dl)
	}

	sb.WriteString("router rip\n")
	sb.WriteString(fmt.Sprintf("   version %d\n", state.RipVersion))
	for _, dl := range direct {
		if _, ok := ripEnabled[dl.Far]; ok {
			sb.WriteString(fmt.Sprintf("   network %s\n", state.NetworkAddr(dl.FarAddr)))
		}
	}
	sb.WriteString("exit\n\n")

	sb.WriteString(fmt.Sprintf("router ospf %d\n", state.OspfProcess))
	if dev.Redistribute {
		sb.WriteString("   redistribute rip subnets\n")
	}
	for _, dl := range direct {
		if dl.Area == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("   network %s %s area %d\n",
			state.NetworkAddr(dl.FarAddr), state.WildcardMask(dl.FarAddr), *dl.Area))
	}
	sb.WriteString("exit\n\n")

	sb.WriteString("exit\n")
	sb.WriteString("disable\n")
	return sb.String(), nil
}

func writeInterface(sb *strings.Builder, dl state.DirectedLink) {
	sb.WriteString(fmt.Sprintf("interface %s%d/0\n", state.InterfacePrefix, dl.CloseIface))
	sb.WriteString(fmt.Sprintf("   ip address %s %s\n", dl.CloseAddr.Addr(), state.SubnetMask(dl.CloseAddr)))
	sb.WriteString("   no shutdown\n")
	sb.WriteString("exit\n\n")
}

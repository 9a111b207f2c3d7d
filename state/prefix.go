package state

import (
	"net"
	"net/netip"

	"github.com/cilium/cilium/pkg/ip"
)

func toIPNet(p netip.Prefix) *net.IPNet {
	return &net.IPNet{
		IP:   p.Addr().AsSlice(),
		Mask: net.CIDRMask(p.Bits(), p.Addr().BitLen()),
	}
}

func toIPNets(prefixes []netip.Prefix) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(prefixes))
	for _, p := range prefixes {
		if p.IsValid() {
			nets = append(nets, toIPNet(p.Masked()))
		}
	}
	return nets
}

func fromIPNets(nets []*net.IPNet) []netip.Prefix {
	output := make([]netip.Prefix, 0, len(nets))
	for _, n := range nets {
		if addr, ok := netip.AddrFromSlice(n.IP); ok {
			ones, _ := n.Mask.Size()
			output = append(output, netip.PrefixFrom(addr.Unmap(), ones))
		}
	}
	return output
}

// CoalescePrefix merges adjacent and nested prefixes into the smallest covering set
func CoalescePrefix(prefixes []netip.Prefix) []netip.Prefix {
	ipv4, ipv6 := ip.CoalesceCIDRs(toIPNets(prefixes))
	return fromIPNets(append(ipv4, ipv6...))
}

// NetworkAddr is the address with all host bits cleared
func NetworkAddr(p netip.Prefix) netip.Addr {
	return p.Masked().Addr()
}

// SubnetMask renders the prefix length as an address, e.g. /30 -> 255.255.255.252
func SubnetMask(p netip.Prefix) netip.Addr {
	mask := net.CIDRMask(p.Bits(), p.Addr().BitLen())
	addr, _ := netip.AddrFromSlice(mask)
	return addr
}

// WildcardMask is the bitwise complement of SubnetMask, e.g. /30 -> 0.0.0.3
func WildcardMask(p netip.Prefix) netip.Addr {
	mask := net.CIDRMask(p.Bits(), p.Addr().BitLen())
	for i := range mask {
		mask[i] = ^mask[i]
	}
	addr, _ := netip.AddrFromSlice(mask)
	return addr
}

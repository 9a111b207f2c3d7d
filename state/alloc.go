package state

import (
	"fmt"
	"net/netip"

	"github.com/apparentlymart/go-cidr/cidr"
)

// AllocateHosts picks the two lowest usable host addresses of block, each carrying the block's
// prefix length. IPv4 blocks of /30 and shorter skip the network and broadcast addresses; an IPv4
// /31 uses both addresses. IPv6 has no broadcast, so every address is usable.
func AllocateHosts(block netip.Prefix) (netip.Prefix, netip.Prefix, error) {
	if !block.IsValid() {
		return netip.Prefix{}, netip.Prefix{}, fmt.Errorf("%w: %v", ErrInvalidBlock, block)
	}
	block = block.Masked()
	hostBits := block.Addr().BitLen() - block.Bits()
	if hostBits < 1 {
		return netip.Prefix{}, netip.Prefix{}, fmt.Errorf("%w: %v", ErrInvalidBlock, block)
	}
	first := 0
	if block.Addr().Is4() && hostBits >= 2 {
		first = 1
	}

	network := toIPNet(block)
	hosts := [2]netip.Prefix{}
	for i := range hosts {
		host, err := cidr.Host(network, first+i)
		if err != nil {
			return netip.Prefix{}, netip.Prefix{}, fmt.Errorf("%w: %v: %w", ErrInvalidBlock, block, err)
		}
		addr, ok := netip.AddrFromSlice(host)
		if !ok {
			return netip.Prefix{}, netip.Prefix{}, fmt.Errorf("%w: %v", ErrInvalidBlock, block)
		}
		if block.Addr().Is4() {
			addr = addr.Unmap()
		}
		hosts[i] = netip.PrefixFrom(addr, block.Bits())
	}
	return hosts[0], hosts[1], nil
}

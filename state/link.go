package state

import (
	"fmt"
	"net/netip"
	"slices"
)

// LinkKey is the canonical form of an unordered device pair, V1 < V2
type LinkKey = Pair[DeviceId, DeviceId]

// LinkId is an opaque handle to a stored link
type LinkId Key

// Link is a point-to-point connection. Low/High follow the LinkKey order.
type Link struct {
	Key       LinkKey
	Block     netip.Prefix
	AddrLow   netip.Prefix
	AddrHigh  netip.Prefix
	IfaceLow  uint
	IfaceHigh uint
	// Area is the OSPF area, nil when the link is not in OSPF
	Area *uint32
}

// DirectedLink is a Link seen from one of its endpoints
type DirectedLink struct {
	Close      DeviceId
	Far        DeviceId
	CloseAddr  netip.Prefix
	FarAddr    netip.Prefix
	CloseIface uint
	Area       *uint32
}

// Orient re-expresses the link from close's point of view. close must be one of the endpoints.
func (l *Link) Orient(close DeviceId) DirectedLink {
	if close == l.Key.V1 {
		return DirectedLink{
			Close:      l.Key.V1,
			Far:        l.Key.V2,
			CloseAddr:  l.AddrLow,
			FarAddr:    l.AddrHigh,
			CloseIface: l.IfaceLow,
			Area:       l.Area,
		}
	}
	return DirectedLink{
		Close:      l.Key.V2,
		Far:        l.Key.V1,
		CloseAddr:  l.AddrHigh,
		FarAddr:    l.AddrLow,
		CloseIface: l.IfaceHigh,
		Area:       l.Area,
	}
}

// LinkTable stores at most one link per unordered device pair.
// LinkTable access must be done only on a single Goroutine
type LinkTable struct {
	reg   *Registry
	links Arena[Link]
	index map[LinkKey]LinkId
}

func NewLinkTable(reg *Registry) *LinkTable {
	return &LinkTable{
		reg:   reg,
		index: make(map[LinkKey]LinkId),
	}
}

func canonicalKey(a, b DeviceId) (LinkKey, error) {
	if a == b {
		return LinkKey{}, fmt.Errorf("%w: %v", ErrDuplicateEndpoint, a)
	}
	return MakeSortedPair(a, b), nil
}

// Link connects a and b with the first two hosts of block. An existing link between the pair is
// overwritten in full, except that it keeps its interface numbers. Nothing is modified on error.
func (t *LinkTable) Link(a, b DeviceId, block netip.Prefix, area *uint32) (LinkId, error) {
	key, err := canonicalKey(a, b)
	if err != nil {
		return 0, err
	}
	low, high := t.reg.Get(key.V1), t.reg.Get(key.V2)
	if low == nil {
		return 0, fmt.Errorf("%w: %v", ErrUnknownDevice, key.V1)
	}
	if high == nil {
		return 0, fmt.Errorf("%w: %v", ErrUnknownDevice, key.V2)
	}
	addrLow, addrHigh, err := AllocateHosts(block)
	if err != nil {
		return 0, err
	}
	if area != nil {
		v := *area
		area = &v
	}

	if id, ok := t.index[key]; ok {
		link, _ := t.links.Get(Key(id))
		link.Block = block.Masked()
		link.AddrLow = addrLow
		link.AddrHigh = addrHigh
		link.Area = area
		return id, nil
	}

	id := LinkId(t.links.Insert(Link{
		Key:       key,
		Block:     block.Masked(),
		AddrLow:   addrLow,
		AddrHigh:  addrHigh,
		IfaceLow:  low.takeIface(),
		IfaceHigh: high.takeIface(),
		Area:      area,
	}))
	if t.index == nil {
		t.index = make(map[LinkKey]LinkId)
	}
	t.index[key] = id
	return id, nil
}

// Unlink removes the link between a and b if there is one. Interface numbers are not returned
// to the devices.
func (t *LinkTable) Unlink(a, b DeviceId) error {
	key, err := canonicalKey(a, b)
	if err != nil {
		return err
	}
	id, ok := t.index[key]
	if !ok {
		return nil
	}
	t.links.Remove(Key(id))
	delete(t.index, key)
	return nil
}

// Get returns the stored link between a and b in canonical orientation
func (t *LinkTable) Get(a, b DeviceId) (*Link, bool) {
	id, ok := t.index[MakeSortedPair(a, b)]
	if !ok {
		return nil, false
	}
	return t.links.Get(Key(id))
}

// LookupOriented returns the link between close and far, seen from close.
// A missing link is reported with ok == false, not as an error.
func (t *LinkTable) LookupOriented(close, far DeviceId) (DirectedLink, bool, error) {
	key, err := canonicalKey(close, far)
	if err != nil {
		return DirectedLink{}, false, err
	}
	link, ok := t.Get(key.V1, key.V2)
	if !ok {
		return DirectedLink{}, false, nil
	}
	return link.Orient(close), true, nil
}

// NeighboursOf returns the far endpoint of every link touching id, in ascending handle order
func (t *LinkTable) NeighboursOf(id DeviceId) []DeviceId {
	out := make([]DeviceId, 0)
	for key := range t.index {
		if key.V1 == id {
			out = append(out, key.V2)
		} else if key.V2 == id {
			out = append(out, key.V1)
		}
	}
	slices.Sort(out)
	return out
}

func (t *LinkTable) Len() int {
	return t.links.Len()
}

// Keys returns every stored pair, sorted
func (t *LinkTable) Keys() []LinkKey {
	keys := make([]LinkKey, 0, len(t.index))
	for key := range t.index {
		keys = append(keys, key)
	}
	SortPairs(keys)
	return keys
}

// Blocks returns the block of every stored link, in key order
func (t *LinkTable) Blocks() []netip.Prefix {
	keys := t.Keys()
	out := make([]netip.Prefix, 0, len(keys))
	for _, key := range keys {
		link, _ := t.Get(key.V1, key.V2)
		out = append(out, link.Block)
	}
	return out
}

package state

import (
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
)

type RedistributionCfg struct {
	OspfToRip bool `yaml:"ospf_to_rip,omitempty"`
}

// DeviceSpec is a device entry of the topology document
type DeviceSpec struct {
	X               float64           `yaml:"x,omitempty"`
	Y               float64           `yaml:"y,omitempty"`
	Rip             bool              `yaml:"rip,omitempty"` // neighbours advertise links towards this device over RIP
	Redistributions RedistributionCfg `yaml:"redistributions,omitempty"`
}

type NamedDevice struct {
	Name string
	DeviceSpec
}

// DeviceList decodes the devices mapping while keeping document order
type DeviceList []NamedDevice

func (d *DeviceList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var order yaml.MapSlice
	if err := unmarshal(&order); err != nil {
		return err
	}
	specs := make(map[string]DeviceSpec)
	if err := unmarshal(&specs); err != nil {
		return err
	}
	list := make(DeviceList, 0, len(order))
	for _, item := range order {
		name := fmt.Sprint(item.Key)
		list = append(list, NamedDevice{Name: name, DeviceSpec: specs[name]})
	}
	*d = list
	return nil
}

func (d DeviceList) MarshalYAML() (interface{}, error) {
	out := make(yaml.MapSlice, 0, len(d))
	for _, dev := range d {
		out = append(out, yaml.MapItem{Key: dev.Name, Value: dev.DeviceSpec})
	}
	return out, nil
}

// LinkSpec is a link entry of the topology document
type LinkSpec struct {
	R1   string       `yaml:"r1"`
	R2   string       `yaml:"r2"`
	IP   netip.Prefix `yaml:"ip"`
	Ospf *uint32      `yaml:"ospf,omitempty"` // OSPF area, the link is left out of OSPF when unset
}

// TopologyDoc is the on-disk topology description
type TopologyDoc struct {
	Devices DeviceList `yaml:"devices"`
	Links   []LinkSpec `yaml:"links,omitempty"`
}

// Topology is the in-memory model built from a TopologyDoc
type Topology struct {
	Registry   *Registry
	Links      *LinkTable
	RipEnabled map[DeviceId]struct{}
}

func NewTopology() *Topology {
	reg := NewRegistry()
	return &Topology{
		Registry:   reg,
		Links:      NewLinkTable(reg),
		RipEnabled: make(map[DeviceId]struct{}),
	}
}

func ParseTopology(b []byte) (*TopologyDoc, error) {
	var doc TopologyDoc
	err := yaml.Unmarshal(b, &doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func LoadTopology(path string) (*TopologyDoc, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseTopology(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Build validates the document and turns it into a Topology. Devices are registered in document
// order, then links are applied in document order, so a repeated pair replaces the earlier entry.
// ripNames are added to the devices marked with rip in the document.
func (doc *TopologyDoc) Build(ripNames []string, log *slog.Logger) (*Topology, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	err := TopologyValidator(doc)
	if err != nil {
		return nil, err
	}
	top := NewTopology()
	for _, dev := range doc.Devices {
		id := top.Registry.AddDevice(DeviceCfg{
			Name:         dev.Name,
			X:            dev.X,
			Y:            dev.Y,
			Redistribute: dev.Redistributions.OspfToRip,
		})
		if dev.Rip {
			top.RipEnabled[id] = struct{}{}
		}
	}
	for _, name := range ripNames {
		id, err := top.Registry.LookupByName(name)
		if err != nil {
			return nil, fmt.Errorf("rip: %w", err)
		}
		top.RipEnabled[id] = struct{}{}
	}

	seen := make(map[LinkKey]int)
	for idx, spec := range doc.Links {
		r1, err := top.Registry.LookupByName(spec.R1)
		if err != nil {
			return nil, fmt.Errorf("link %d: %w", idx, err)
		}
		r2, err := top.Registry.LookupByName(spec.R2)
		if err != nil {
			return nil, fmt.Errorf("link %d: %w", idx, err)
		}
		_, err = top.Links.Link(r1, r2, spec.IP, spec.Ospf)
		if err != nil {
			return nil, fmt.Errorf("link %d (%s, %s): %w", idx, spec.R1, spec.R2, err)
		}
		key := MakeSortedPair(r1, r2)
		if prev, ok := seen[key]; ok {
			log.Warn("link redefined, earlier entry replaced", "r1", spec.R1, "r2", spec.R2, "previous", prev, "index", idx)
		}
		seen[key] = idx
		log.Debug("linked", "r1", spec.R1, "r2", spec.R2, "block", spec.IP.Masked())
	}

	for _, block := range OverlappingBlocks(top.Links.Blocks()) {
		log.Warn("link block overlaps another link", "block", block)
	}
	return top, nil
}

// RipNames returns the names of the RIP enabled devices in registry order
func (top *Topology) RipNames() []string {
	names := make([]string, 0, len(top.RipEnabled))
	for _, id := range top.Registry.Devices() {
		if _, ok := top.RipEnabled[id]; ok {
			names = append(names, top.Registry.Name(id))
		}
	}
	return names
}

// Neighbours returns the names of every device linked to name, sorted
func (top *Topology) Neighbours(name string) ([]string, error) {
	id, err := top.Registry.LookupByName(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0)
	for _, far := range top.Links.NeighboursOf(id) {
		out = append(out, top.Registry.Name(far))
	}
	slices.Sort(out)
	return out, nil
}

func SaveTopology(path string, doc *TopologyDoc) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AddDevice appends a device to the document
func (doc *TopologyDoc) AddDevice(name string, spec DeviceSpec) error {
	err := NameValidator(name)
	if err != nil {
		return err
	}
	if slices.ContainsFunc(doc.Devices, func(dev NamedDevice) bool {
		return dev.Name == name
	}) {
		return fmt.Errorf("duplicate device found: %s", name)
	}
	doc.Devices = append(doc.Devices, NamedDevice{Name: name, DeviceSpec: spec})
	return nil
}

func samePair(spec LinkSpec, r1, r2 string) bool {
	return MakeSortedPair(spec.R1, spec.R2) == MakeSortedPair(r1, r2)
}

// SetLink replaces every entry for the unordered pair with spec, or appends it
func (doc *TopologyDoc) SetLink(spec LinkSpec) {
	idx := slices.IndexFunc(doc.Links, func(l LinkSpec) bool {
		return samePair(l, spec.R1, spec.R2)
	})
	if idx == -1 {
		doc.Links = append(doc.Links, spec)
		return
	}
	doc.Links[idx] = spec
	rest := slices.DeleteFunc(doc.Links[idx+1:], func(l LinkSpec) bool {
		return samePair(l, spec.R1, spec.R2)
	})
	doc.Links = doc.Links[:idx+1+len(rest)]
}

// RemoveLink drops every entry for the unordered pair, reporting whether any existed
func (doc *TopologyDoc) RemoveLink(r1, r2 string) bool {
	n := len(doc.Links)
	doc.Links = slices.DeleteFunc(doc.Links, func(l LinkSpec) bool {
		return samePair(l, r1, r2)
	})
	return len(doc.Links) != n
}

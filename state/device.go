package state

import (
	"fmt"
)

// DeviceId is an opaque device handle. Handles are totally ordered by creation sequence.
type DeviceId Key

func (id DeviceId) String() string {
	return Key(id).String()
}

// DeviceCfg is the immutable description a device is created from
type DeviceCfg struct {
	Name string
	// X and Y are editor coordinates, stored but never interpreted here
	X, Y float64
	// Redistribute advertises RIP routes into OSPF
	Redistribute bool
}

type Device struct {
	DeviceCfg
	Id DeviceId
	// NextIface is the next unused interface index on this device
	NextIface uint
}

// takeIface consumes the next interface index
func (d *Device) takeIface() uint {
	idx := d.NextIface
	d.NextIface++
	return idx
}

// Registry owns every device record. Devices are never removed.
// Registry access must be done only on a single Goroutine
type Registry struct {
	devices Arena[Device]
	names   map[string]DeviceId
}

func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]DeviceId),
	}
}

// AddDevice registers a device. Names are not enforced unique here; the loader treats them as
// the external identity and rejects duplicates. A later device with the same name shadows the
// earlier one for LookupByName.
func (r *Registry) AddDevice(cfg DeviceCfg) DeviceId {
	key := r.devices.Insert(Device{DeviceCfg: cfg})
	id := DeviceId(key)
	dev, _ := r.devices.Get(key)
	dev.Id = id
	if r.names == nil {
		r.names = make(map[string]DeviceId)
	}
	r.names[cfg.Name] = id
	return id
}

func (r *Registry) LookupByName(name string) (DeviceId, error) {
	id, ok := r.names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownName, name)
	}
	return id, nil
}

// Get returns the device record, or nil if the handle does not belong to this registry
func (r *Registry) Get(id DeviceId) *Device {
	dev, ok := r.devices.Get(Key(id))
	if !ok {
		return nil
	}
	return dev
}

// Name resolves a handle to its device name, falling back to the handle itself
func (r *Registry) Name(id DeviceId) string {
	if dev := r.Get(id); dev != nil {
		return dev.Name
	}
	return "<" + id.String() + ">"
}

// Devices returns every handle in insertion order
func (r *Registry) Devices() []DeviceId {
	keys := r.devices.Keys()
	ids := make([]DeviceId, len(keys))
	for i, k := range keys {
		ids[i] = DeviceId(k)
	}
	return ids
}

func (r *Registry) Len() int {
	return r.devices.Len()
}

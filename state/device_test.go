package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddLookup(t *testing.T) {
	r := NewRegistry()
	r1 := r.AddDevice(DeviceCfg{Name: "R1", X: 10, Y: 20})
	r2 := r.AddDevice(DeviceCfg{Name: "R2", Redistribute: true})

	id, err := r.LookupByName("R2")
	require.NoError(t, err)
	assert.Equal(t, r2, id)

	dev := r.Get(r1)
	require.NotNil(t, dev)
	assert.Equal(t, "R1", dev.Name)
	assert.Equal(t, 10.0, dev.X)
	assert.Equal(t, 20.0, dev.Y)
	assert.False(t, dev.Redistribute)
	assert.Equal(t, r1, dev.Id)
	assert.Equal(t, uint(0), dev.NextIface)

	assert.True(t, r.Get(r2).Redistribute)
	assert.Equal(t, []DeviceId{r1, r2}, r.Devices())
	assert.Less(t, r1, r2)
}

func TestRegistryUnknownName(t *testing.T) {
	r := NewRegistry()
	r.AddDevice(DeviceCfg{Name: "R1"})
	_, err := r.LookupByName("R9")
	assert.ErrorIs(t, err, ErrUnknownName)
	assert.ErrorContains(t, err, "R9")
}

func TestRegistryForeignHandle(t *testing.T) {
	r := NewRegistry()
	other := NewRegistry()
	other.AddDevice(DeviceCfg{Name: "A"})
	id := other.AddDevice(DeviceCfg{Name: "B"})
	assert.Nil(t, r.Get(id))
	assert.Equal(t, "<"+id.String()+">", r.Name(id))
}

func TestRegistryZeroValue(t *testing.T) {
	var r Registry
	id := r.AddDevice(DeviceCfg{Name: "R1"})
	got, err := r.LookupByName("R1")
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, 1, r.Len())
}

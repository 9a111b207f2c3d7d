package cmd

import (
	"net/netip"
	"testing"

	"github.com/ptgen/ptgen/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinkLine(t *testing.T) {
	spec, err := parseLinkLine("R1 R2 10.0.0.0/30")
	require.NoError(t, err)
	assert.Equal(t, state.LinkSpec{R1: "R1", R2: "R2", IP: netip.MustParsePrefix("10.0.0.0/30")}, spec)

	spec, err = parseLinkLine("  R1   R3 10.0.0.4/30 7 ")
	require.NoError(t, err)
	require.NotNil(t, spec.Ospf)
	assert.Equal(t, uint32(7), *spec.Ospf)

	_, err = parseLinkLine("R1 R2")
	assert.ErrorContains(t, err, "expected")
	_, err = parseLinkLine("R1 R2 10.0.0.0")
	assert.Error(t, err)
	_, err = parseLinkLine("R1 R2 10.0.0.0/30 backbone")
	assert.ErrorContains(t, err, "invalid area")
}

func TestOptionalValidator(t *testing.T) {
	validate := optional(state.NameValidator)
	assert.NoError(t, validate(""))
	assert.NoError(t, validate("R1"))
	assert.Error(t, validate("R 1"))
}

package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ptgen/ptgen/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTopology = `devices:
  R1:
    x: 100
    y: 40
  R2:
    rip: true
    redistributions:
      ospf_to_rip: true
  R3: {}
links:
  - { r1: R1, r2: R2, ip: "10.0.0.0/30", ospf: 0 }
  - { r1: R2, r2: R3, ip: "10.0.0.4/30" }
`

func writeTopology(t *testing.T, doc string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "topology.yaml")
	require.NoError(t, os.WriteFile(p, []byte(doc), 0644))
	return p
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output")
	buf := &bytes.Buffer{}
	log, closer, err := NewLogger(buf, "", true)
	require.NoError(t, err)
	defer closer()

	configs, err := Generate(Options{
		TopologyPath: writeTopology(t, sampleTopology),
		OutputDir:    out,
		Rip:          []string{"R3"},
	}, log)
	require.NoError(t, err)
	assert.Len(t, configs, 3)

	for _, name := range []string{"R1", "R2", "R3"} {
		data, err := os.ReadFile(filepath.Join(out, name+".txt"))
		require.NoError(t, err)
		assert.Equal(t, configs[name], string(data))
	}
	assert.Contains(t, configs["R1"], "   network 10.0.0.0\n")
	assert.Contains(t, configs["R2"], "   network 10.0.0.4\n")
	assert.Contains(t, configs["R2"], "   redistribute rip subnets\n")
	assert.Contains(t, buf.String(), "compiled configurations")
}

func TestGenerateUnknownNameWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output")
	log, closer, err := NewLogger(&bytes.Buffer{}, "", false)
	require.NoError(t, err)
	defer closer()

	_, err = Generate(Options{
		TopologyPath: writeTopology(t, "devices:\n  R1: {}\nlinks:\n  - { r1: R1, r2: R2, ip: 10.0.0.0/30 }\n"),
		OutputDir:    out,
	}, log)
	assert.ErrorIs(t, err, state.ErrUnknownName)
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateDryRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output")
	log, closer, err := NewLogger(&bytes.Buffer{}, "", false)
	require.NoError(t, err)
	defer closer()

	configs, err := Generate(Options{
		TopologyPath: writeTopology(t, sampleTopology),
		OutputDir:    out,
		DryRun:       true,
	}, log)
	require.NoError(t, err)
	assert.Len(t, configs, 3)
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestNewLoggerFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "ptgen.log")
	log, closer, err := NewLogger(&bytes.Buffer{}, logPath, false)
	require.NoError(t, err)
	log.Info("hello", "device", "R1")
	log.Debug("hidden")
	require.NoError(t, closer())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "device=R1")
	assert.NotContains(t, string(data), "hidden")
}

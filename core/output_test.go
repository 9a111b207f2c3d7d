package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	configs := map[string]string{
		"R1": "enable\n",
		"R2": "disable\n",
	}
	require.NoError(t, WriteConfigs(dir, configs))
	// a second run reuses the directory and replaces the files
	configs["R1"] = "enable\nexit\n"
	require.NoError(t, WriteConfigs(dir, configs))

	for name, text := range configs {
		data, err := os.ReadFile(filepath.Join(dir, name+".txt"))
		require.NoError(t, err)
		assert.Equal(t, text, string(data))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must not be left behind")
}

func TestWriteConfigsDirIsFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0644))
	err := WriteConfigs(dir, map[string]string{"R1": "enable\n"})
	assert.Error(t, err)
}

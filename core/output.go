package core

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/ptgen/ptgen/state"
)

// WriteConfigs stores every configuration as <dir>/<name><ext>. An existing dir is reused.
func WriteConfigs(dir string, configs map[string]string) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(configs)) {
		err = writeFileAtomic(filepath.Join(dir, name+state.OutputExt), []byte(configs[name]), 0644)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeFileAtomic replaces filePath via rename, so a reader never sees a half-written config
func writeFileAtomic(filePath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filePath)
	tmp, err := os.CreateTemp(dir, "*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, filePath)
}

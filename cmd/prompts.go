package cmd

import (
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/ptgen/ptgen/state"
)

func promptDefaultStr(label string, def string, validateFunc promptui.ValidateFunc) string {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Validate:  validateFunc,
	}
	val, err := prompt.Run()
	if err != nil {
		panic(err)
	}
	return val
}

func promptYN(prefix string, def bool) bool {
	choose := promptui.Select{
		Label:     prefix,
		Items:     []string{"Yes", "No"},
		Size:      2,
		CursorPos: 0,
	}
	if !def {
		choose.CursorPos = 1
	}
	run, _, err := choose.Run()
	if err != nil {
		return false
	}
	if run == 0 {
		return true
	} else {
		return false
	}
}

// optional wraps a validator so that an empty answer ends the current prompt loop
func optional(validate promptui.ValidateFunc) promptui.ValidateFunc {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return validate(s)
	}
}

// parseLinkLine reads "r1 r2 cidr [area]"
func parseLinkLine(s string) (state.LinkSpec, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 && len(fields) != 4 {
		return state.LinkSpec{}, fmt.Errorf("expected \"r1 r2 cidr [area]\", got %q", s)
	}
	block, err := netip.ParsePrefix(fields[2])
	if err != nil {
		return state.LinkSpec{}, err
	}
	spec := state.LinkSpec{R1: fields[0], R2: fields[1], IP: block}
	if len(fields) == 4 {
		var area uint32
		_, err = fmt.Sscan(fields[3], &area)
		if err != nil {
			return state.LinkSpec{}, fmt.Errorf("invalid area %q: %w", fields[3], err)
		}
		spec.Ospf = &area
	}
	return spec, nil
}

func safeSaveFile(path string, name string) string {
Save:
	path, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Where do you want to save the %s?\n", name)
	path = promptDefaultStr("path", path, state.PathValidator)

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Warning: %s file already exists: %s, do you want to overwrite it?\n", name, path)
		res := promptYN("Overwrite?", false)
		if !res {
			goto Save
		}
	}
	return path
}

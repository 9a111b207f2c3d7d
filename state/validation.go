package state

import (
	"fmt"
	"net/netip"
	"os"
	"path"
	"path/filepath"
	"regexp"

	"github.com/gaissmai/bart"
)

// device names become file names, so they are restricted to a portable character set
var namePattern, _ = regexp.Compile("^[0-9A-Za-z._-]+$")

func PathValidator(s string) error {
	_, err := os.Stat(path.Dir(s))
	if err != nil {
		return err
	}
	_, err = filepath.Abs(s)
	return err
}

func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%s is not a valid name, must match pattern %s", s, namePattern.String())
	}
	if s == "." || s == ".." {
		return fmt.Errorf("%s is not a valid name", s)
	}
	if len(s) > MaxNameLen {
		return fmt.Errorf("len(\"%s\") = %d > %d is too long", s, len(s), MaxNameLen)
	}
	return nil
}

func TopologyValidator(doc *TopologyDoc) error {
	names := make(map[string]struct{}, len(doc.Devices))
	for _, dev := range doc.Devices {
		err := NameValidator(dev.Name)
		if err != nil {
			return err
		}
		if _, ok := names[dev.Name]; ok {
			return fmt.Errorf("duplicate device found: %s", dev.Name)
		}
		names[dev.Name] = struct{}{}
	}
	for idx, link := range doc.Links {
		for _, end := range []string{link.R1, link.R2} {
			if _, ok := names[end]; !ok {
				return fmt.Errorf("link %d: %w: %s", idx, ErrUnknownName, end)
			}
		}
		if link.R1 == link.R2 {
			return fmt.Errorf("link %d: %w: %s", idx, ErrDuplicateEndpoint, link.R1)
		}
		if !link.IP.IsValid() {
			return fmt.Errorf("link %d (%s, %s): missing or invalid ip", idx, link.R1, link.R2)
		}
	}
	return nil
}

// OverlappingBlocks returns every block that overlaps a block earlier in the list
func OverlappingBlocks(blocks []netip.Prefix) []netip.Prefix {
	tbl := bart.Table[struct{}]{}
	out := make([]netip.Prefix, 0)
	for _, block := range blocks {
		block = block.Masked()
		if tbl.OverlapsPrefix(block) {
			out = append(out, block)
		}
		tbl.Insert(block, struct{}{})
	}
	return out
}

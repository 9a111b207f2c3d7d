package cmd

import (
	"log/slog"
	"net/netip"
	"os"

	"github.com/ptgen/ptgen/core"
	"github.com/ptgen/ptgen/state"
)

// newLogger builds the command logger; the returned func flushes and closes the log file
func newLogger() (*slog.Logger, func()) {
	log, closer, err := core.NewLogger(os.Stderr, state.LogPath, verbose)
	if err != nil {
		panic(err)
	}
	return log, func() {
		_ = closer()
	}
}

func loadTopology(rip []string, log *slog.Logger) *state.Topology {
	top, err := core.BuildTopology(state.TopologyPath, rip, log)
	if err != nil {
		panic(err)
	}
	return top
}

func loadDoc() *state.TopologyDoc {
	doc, err := state.LoadTopology(state.TopologyPath)
	if err != nil {
		panic(err)
	}
	return doc
}

func saveDoc(doc *state.TopologyDoc) {
	err := state.SaveTopology(state.TopologyPath, doc)
	if err != nil {
		panic(err)
	}
}

func compareAddrStrings(a, b string) int {
	return netip.MustParseAddr(a).Compare(netip.MustParseAddr(b))
}

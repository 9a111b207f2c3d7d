package core

import (
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/tint"
	"github.com/ptgen/ptgen/state"
	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	TopologyPath string
	OutputDir    string
	Rip          []string // devices added to the RIP enabled set
	DryRun       bool     // compile without writing anything
}

// NewLogger builds the console logger and, when logPath is set, tees records into that file.
// The returned closer releases the log file.
func NewLogger(stderr io.Writer, logPath string, verbose bool) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(stderr, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: "ptgen",
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	closer := func() error { return nil }
	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// BuildTopology loads the document at topologyPath and builds the in-memory model
func BuildTopology(topologyPath string, rip []string, log *slog.Logger) (*state.Topology, error) {
	doc, err := state.LoadTopology(topologyPath)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded topology", "path", topologyPath, "devices", len(doc.Devices), "links", len(doc.Links))
	return doc.Build(rip, log)
}

// Generate runs the whole batch: load, compile every device, then write. Output is only written
// once every device compiled, so a failed run leaves the output directory untouched.
func Generate(opts Options, log *slog.Logger) (map[string]string, error) {
	top, err := BuildTopology(opts.TopologyPath, opts.Rip, log)
	if err != nil {
		return nil, err
	}
	configs, err := Compile(top.Registry, top.Links, top.RipEnabled)
	if err != nil {
		return nil, err
	}
	log.Info("compiled configurations", "devices", len(configs), "links", top.Links.Len())
	if opts.DryRun {
		return configs, nil
	}
	err = WriteConfigs(opts.OutputDir, configs)
	if err != nil {
		return nil, err
	}
	log.Info("wrote configurations", "dir", opts.OutputDir)
	return configs, nil
}

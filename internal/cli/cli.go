// SPDX-License-Identifier: MIT

// Package cli parses shortpath command-line arguments.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/shortpath/internal/config"
)

// ExitError is returned for errors that should terminate the process with a
// specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Topologies accepted by -topology.
var Topologies = []string{"classic", "path", "cycle", "star", "complete", "grid", "random"}

// Options holds the parsed command line.
type Options struct {
	ConfigPath string
	EnvPath    string

	GraphPath string // graph document to load; wins over Topology
	Topology  string
	N         int
	P         float64
	Seed      int64

	Sources  []string // empty means the graph's first vertex
	Format   string   // text|json
	SavePath string
	SVGPath  string
	History  int // > 0 lists archived runs instead of computing

	overrides []func(*config.Config)
}

// Apply writes explicitly set configuration flags over cfg.
func (o *Options) Apply(cfg *config.Config) {
	for _, fn := range o.overrides {
		fn(cfg)
	}
}

// Parse processes command-line arguments. It returns the parsed Options, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("shortpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
shortpath - single-source shortest paths over weighted undirected graphs.

Usage:
  shortpath [options] [GRAPH_PATH]

Arguments:
  GRAPH_PATH
    Adjacency document (.json, .yaml, .yml). Without it a generated
    topology is used (see -topology).

Options:
`)
		flagSet.PrintDefaults()
	}

	o := &Options{}
	flagSet.StringVar(&o.ConfigPath, "config", "", "Path to a YAML configuration file.")
	flagSet.StringVar(&o.EnvPath, "env", ".env", "Path to a .env file; ignored when missing.")
	flagSet.StringVar(&o.GraphPath, "graph", "", "Path to the graph document.")
	flagSet.StringVar(&o.Topology, "topology", "classic", "Generated graph when no document is given: "+strings.Join(Topologies, ", ")+".")
	flagSet.IntVar(&o.N, "n", 10, "Vertex count (grid: side length) for generated topologies.")
	flagSet.Float64Var(&o.P, "p", 0.2, "Edge probability for -topology random.")
	flagSet.Int64Var(&o.Seed, "seed", 1, "Seed for generated weights and random topologies.")
	sources := flagSet.String("source", "", "Comma-separated source vertices. Defaults to the first vertex.")
	flagSet.StringVar(&o.Format, "format", "text", "Output format. Options: 'text' or 'json'.")
	flagSet.StringVar(&o.SavePath, "save", "", "Write the graph document to this path (.json/.yaml).")
	flagSet.StringVar(&o.SVGPath, "svg", "", "Draw the graph coloured by the first source's distances to this SVG file.")
	flagSet.IntVar(&o.History, "history", 0, "List the N most recent archived runs and exit.")

	logLevel := flagSet.String("log-level", "", "Logging level. Options: 'trace', 'debug', 'info', 'warn', 'error'.")
	logFormat := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	strategy := flagSet.String("strategy", "", "Vertex selection strategy. Options: 'linear' or 'heap'.")
	workers := flagSet.Int("workers", 0, "Concurrent runs when several sources are given (0 = GOMAXPROCS).")
	archiveDSN := flagSet.String("archive", "", "SQLite file recording every run.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if o.GraphPath == "" && flagSet.NArg() > 0 {
		o.GraphPath = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args()[1:])}
	}
	if *sources != "" {
		for _, s := range strings.Split(*sources, ",") {
			if s = strings.TrimSpace(s); s != "" {
				o.Sources = append(o.Sources, s)
			}
		}
	}
	switch o.Format {
	case "text", "json":
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -format %q: want text or json", o.Format)}
	}
	if o.GraphPath == "" && !knownTopology(o.Topology) {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -topology %q: want one of %s", o.Topology, strings.Join(Topologies, ", "))}
	}

	// Only flags given on the command line override the configuration.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			o.overrides = append(o.overrides, func(c *config.Config) { c.Logging.Level = *logLevel })
		case "log-format":
			o.overrides = append(o.overrides, func(c *config.Config) { c.Logging.Format = *logFormat })
		case "strategy":
			o.overrides = append(o.overrides, func(c *config.Config) { c.Engine.Strategy = *strategy })
		case "workers":
			o.overrides = append(o.overrides, func(c *config.Config) { c.Engine.Workers = *workers })
		case "archive":
			o.overrides = append(o.overrides, func(c *config.Config) { c.Archive.DSN = *archiveDSN })
		}
	})

	return o, false, nil
}

func knownTopology(name string) bool {
	for _, t := range Topologies {
		if t == name {
			return true
		}
	}

	return false
}

// SPDX-License-Identifier: MIT

// Command shortpath computes single-source shortest paths over a weighted
// undirected graph loaded from a document or generated from a topology.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/internal/archive"
	"github.com/katalvlaran/shortpath/internal/cli"
	"github.com/katalvlaran/shortpath/internal/config"
	"github.com/katalvlaran/shortpath/internal/logging"
	"github.com/katalvlaran/shortpath/render"
)

// main is the entrypoint for the shortpath command.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
// Results go to outW, diagnostics to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	// 1) Flags, then configuration with flag overrides on top.
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	cfg, err := config.Load(opts.ConfigPath, opts.EnvPath)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	opts.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	strategy, err := dijkstra.ParseStrategy(cfg.Engine.Strategy)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	log := logging.New(cfg.Logging, logW)

	// 2) History mode only reads the archive.
	if opts.History > 0 {
		return printHistory(ctx, outW, cfg.Archive.DSN, opts.History)
	}

	// 3) Graph and sources.
	g, err := loadGraph(opts, log)
	if err != nil {
		return err
	}
	sources := opts.Sources
	if len(sources) == 0 {
		verts := g.Vertices()
		if len(verts) == 0 {
			return errors.New("graph has no vertices")
		}
		sources = verts[:1]
	}

	// 4) Compute.
	results, err := dijkstra.DijkstraAll(ctx, g, sources,
		dijkstra.WithStrategy(strategy),
		dijkstra.WithLogger(log),
		dijkstra.WithConcurrency(cfg.Engine.Workers),
	)
	if err != nil {
		return err
	}

	// 5) Report and side outputs.
	order := g.Vertices()
	if opts.Format == "json" {
		err = writeJSON(outW, order, strategy, results)
	} else {
		err = writeText(outW, order, strategy, results)
	}
	if err != nil {
		return err
	}

	if opts.SavePath != "" {
		if err := graphio.Save(opts.SavePath, graphio.FromGraph(g)); err != nil {
			return err
		}
		log.Info("graph document saved", "path", opts.SavePath)
	}
	if opts.SVGPath != "" {
		if err := writeSVG(opts.SVGPath, g, results[0].Dist, cfg.Render, log); err != nil {
			return err
		}
		log.Info("svg written", "path", opts.SVGPath)
	}
	if cfg.Archive.DSN != "" {
		if err := archiveResults(ctx, cfg.Archive.DSN, order, strategy, results, log); err != nil {
			return err
		}
	}

	return nil
}

// loadGraph reads opts.GraphPath or generates opts.Topology.
func loadGraph(opts *cli.Options, log *slog.Logger) (*core.Graph[string], error) {
	gopts := []core.GraphOption{core.WithLogger(log)}
	if opts.GraphPath != "" {
		doc, err := graphio.Load(opts.GraphPath)
		if err != nil {
			return nil, err
		}
		return doc.Graph(gopts...)
	}

	var ctor builder.Constructor
	switch opts.Topology {
	case "classic":
		ctor = builder.Classic()
	case "path":
		ctor = builder.Path(opts.N)
	case "cycle":
		ctor = builder.Cycle(opts.N)
	case "star":
		ctor = builder.Star(opts.N)
	case "complete":
		ctor = builder.Complete(opts.N)
	case "grid":
		ctor = builder.Grid(opts.N, opts.N)
	case "random":
		ctor = builder.RandomSparse(opts.N, opts.P)
	default:
		return nil, &cli.ExitError{Code: 2, Message: fmt.Sprintf("unknown topology %q", opts.Topology)}
	}
	bopts := []builder.Option{
		builder.WithSeed(opts.Seed),
		builder.WithWeightFn(builder.IntWeightFn(1, 9)),
	}

	return builder.BuildGraph(gopts, bopts, ctor)
}

func writeSVG(path string, g *core.Graph[string], dist map[string]float64, rc config.RenderConfig, log *slog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render.Graph(f, g, dist, render.WithCanvas(rc.Width, rc.Height), render.WithLogger(log)); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func archiveResults(ctx context.Context, dsn string, order []string, strategy dijkstra.Strategy, results []dijkstra.Result[string], log *slog.Logger) error {
	store, err := archive.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		run, err := store.Record(ctx, r.Source, strategy.String(), order, r.Dist, r.Prev)
		if err != nil {
			return err
		}
		log.Info("run archived", "id", run.ID, "source", r.Source)
	}

	return nil
}

func printHistory(ctx context.Context, outW io.Writer, dsn string, limit int) error {
	if dsn == "" {
		return &cli.ExitError{Code: 2, Message: "-history needs an archive (-archive or SHORTPATH_ARCHIVE)"}
	}
	store, err := archive.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(ctx, limit)
	if err != nil {
		return err
	}

	return writeHistory(outW, runs)
}

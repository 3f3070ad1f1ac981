// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrInvalidGraphArgument indicates that no graph (a nil *core.Graph) was supplied.
	ErrInvalidGraphArgument = errors.New("dijkstra: graph must be a non-nil *core.Graph")

	// ErrUnknownSourceVertex indicates that the source vertex does not exist in the graph.
	ErrUnknownSourceVertex = errors.New("dijkstra: source vertex not in graph")

	// ErrBadHook indicates that the OnVisit hook does not match the graph's vertex type.
	ErrBadHook = errors.New("dijkstra: OnVisit hook has the wrong vertex type")

	// ErrUnknownStrategy indicates that a strategy name could not be parsed.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects how the next vertex to finalize is found.
type Strategy int

const (
	// LinearScan scans every unvisited vertex on each iteration.
	LinearScan Strategy = iota

	// Heap keeps candidates in a binary heap keyed by (distance, insertion index).
	Heap
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case LinearScan:
		return "linear"
	case Heap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "linear" or "heap" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear", "scan", "linear-scan":
		return LinearScan, nil
	case "heap", "pq":
		return Heap, nil
	default:
		return LinearScan, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures a Dijkstra run.
//
// Strategy    – vertex selection strategy (default LinearScan).
// Logger      – diagnostic sink; nil means "use the graph's logger".
// Concurrency – upper bound on parallel runs in DijkstraAll (≤ 0 means GOMAXPROCS).
type Options struct {
	Strategy    Strategy
	Logger      *slog.Logger
	Concurrency int

	// onVisit holds a func(V, float64) for the caller's vertex type V.
	onVisit any
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() Options {
	return Options{
		Strategy:    LinearScan,
		Logger:      nil,
		Concurrency: 0,
	}
}

// WithStrategy selects the vertex selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger sets the diagnostic sink for the run. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithConcurrency bounds the number of simultaneous runs in DijkstraAll.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// WithOnVisit installs fn as a hook called once per finalized reachable vertex,
// in finalization order, with the vertex's final distance.
// V must match the graph's vertex type, otherwise Dijkstra returns ErrBadHook.
// Under DijkstraAll the hook may run concurrently from several goroutines.
func WithOnVisit[V comparable](fn func(v V, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

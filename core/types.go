// SPDX-License-Identifier: MIT

package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrInvalidVertexType indicates that a vertex value cannot serve as a map key.
var ErrInvalidVertexType = errors.New("core: invalid vertex type")

// LevelTrace is the diagnostic level used for high-volume read queries.
// It sits below slog.LevelDebug so that Debug handlers drop it by default.
const LevelTrace = slog.Level(-8)

// Edge is a single undirected edge as reported by Graph.Edges.
type Edge[V comparable] struct {
	// U is the endpoint that was inserted into the graph first.
	U V

	// V is the other endpoint (equal to U for a self-loop).
	V V

	// Weight is the cost of traversing the edge in either direction.
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

// graphConfig is the non-generic part of a Graph's configuration.
type graphConfig struct {
	logger *slog.Logger
}

// WithLogger installs the diagnostic sink used by the graph.
// A nil logger keeps the default discarding sink.
func WithLogger(l *slog.Logger) GraphOption {
	return func(c *graphConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Graph is an undirected, weighted adjacency-list store.
//
// The zero value is an empty graph ready for use; it logs to a discarding sink.
type Graph[V comparable] struct {
	mu sync.RWMutex // guards every field below

	adjacency map[V]map[V]float64 // vertex → neighbor → weight
	order     []V                 // vertex insertion order
	index     map[V]int           // vertex → position in order
	nbrOrder  map[V][]V           // vertex → neighbor insertion order
	edgeCount int                 // number of distinct undirected edges

	logger *slog.Logger
}

// NewGraph creates an empty Graph configured by opts.
// Complexity: O(len(opts)).
func NewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	cfg := graphConfig{logger: discardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[V]{logger: cfg.logger}
	g.init()
	g.logger.Info("created an empty graph")

	return g
}

// Logger returns the diagnostic sink of the graph (never nil).
func (g *Graph[V]) Logger() *slog.Logger {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sink()
}

// sink returns the logger, falling back to a discarding one for zero values.
// Callers must hold g.mu.
func (g *Graph[V]) sink() *slog.Logger {
	if g.logger == nil {
		return discardLogger()
	}

	return g.logger
}

// init lazily allocates storage so that the zero value is usable.
// Callers must hold g.mu for writing, except in NewGraph.
func (g *Graph[V]) init() {
	if g.adjacency != nil {
		return
	}
	g.adjacency = make(map[V]map[V]float64)
	g.index = make(map[V]int)
	g.nbrOrder = make(map[V][]V)
	if g.logger == nil {
		g.logger = discardLogger()
	}
}

// trace emits a record at LevelTrace.
func (g *Graph[V]) trace(msg string, args ...any) {
	g.sink().Log(context.Background(), LevelTrace, msg, args...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for shortpath/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Capture diagnostic records so tests can assert on levels without
//     depending on handler output formats.

package core_test

import (
	"context"
	"log/slog"
	"sync"

	"github.com/katalvlaran/shortpath/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight4 = 4.0
	Weight9 = 9.5
)

// record is a captured diagnostic entry.
type record struct {
	Level slog.Level
	Msg   string
}

// recorder is a slog.Handler that keeps every record in memory.
type recorder struct {
	mu      sync.Mutex
	records []record
}

func (r *recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record{Level: rec.Level, Msg: rec.Message})

	return nil
}

func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recorder) WithGroup(string) slog.Handler      { return r }

// count returns how many records were captured at level.
func (r *recorder) count(level slog.Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.records {
		if rec.Level == level {
			n++
		}
	}

	return n
}

// newRecordedGraph returns a string graph whose diagnostics land in the returned recorder.
func newRecordedGraph() (*core.Graph[string], *recorder) {
	rec := &recorder{}
	g := core.NewGraph[string](core.WithLogger(slog.New(rec)))

	return g, rec
}

// newSquare builds the square A-B-C-D-A with weights 1,2,1,4.
func newSquare() *core.Graph[string] {
	g := core.NewGraph[string]()
	_ = g.AddEdge(VertexA, VertexB, Weight1)
	_ = g.AddEdge(VertexB, VertexC, Weight2)
	_ = g.AddEdge(VertexC, VertexD, Weight1)
	_ = g.AddEdge(VertexD, VertexA, Weight4)

	return g
}

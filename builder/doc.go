// SPDX-License-Identifier: MIT

// Package builder produces deterministic weighted graphs for tests, benchmarks,
// examples and the shortpath CLI.
//
// One orchestrator, BuildGraph, creates a *core.Graph[string], resolves the
// builder options and applies Constructors in order:
//
//	g, err := builder.BuildGraph(nil, []builder.Option{builder.WithSeed(7)},
//		builder.RandomSparse(50, 0.1),
//	)
//
// Topologies:
//
//	Path(n)            0-1-...-(n-1)                      n ≥ 2
//	Cycle(n)           Path(n) plus (n-1)-0               n ≥ 3
//	Star(n)            hub 0 joined to 1..n-1             n ≥ 2
//	Complete(n)        every unordered pair               n ≥ 1
//	Grid(rows, cols)   4-neighbour lattice, row-major ids rows, cols ≥ 1
//	RandomSparse(n, p) each pair kept with probability p  n ≥ 1, 0 ≤ p ≤ 1
//	FromEdges(edges)   explicit weighted edge list
//	Classic()          the six-vertex A..F reference graph
//
// Vertex IDs come from an IDFn (DefaultIDFn: "0","1",...); weights come from a
// WeightFn (DefaultWeightFn: 1). Same options, seed and constructor order
// always yield the same graph, including vertex and neighbor insertion order.
//
// Errors (use errors.Is):
//
//	ErrTooFewVertices      size parameter below the constructor's minimum
//	ErrInvalidProbability  p outside [0,1]
//	ErrConstructFailed     nil constructor or a rejected core mutation
//
// Option constructors (WithIDFn, WithWeightFn) panic on nil; constructors
// never panic.
package builder

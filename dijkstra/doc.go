// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths on a core.Graph with
// non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, source) returns a distance map (every vertex, math.Inf(1) when
//     unreachable) and a predecessor map (only vertices that have a predecessor:
//     the source and unreachable vertices are absent).
//   - Following predecessor links from any reachable vertex ends at the source
//     in at most |V|-1 steps; the weights along that walk sum to its distance.
//   - DijkstraAll(ctx, g, sources) fans independent runs out over a bounded
//     errgroup and returns results in input order.
//
// Selection order:
//
// Each iteration finalizes the unvisited vertex with the smallest tentative
// distance. Ties are broken by vertex insertion order (core.Graph.Vertices),
// so results are reproducible for a given construction sequence. Relaxation
// uses a strict "<": an equal-cost alternative never replaces a predecessor.
//
// Strategies:
//
//   - LinearScan (default): O(V) scan per iteration, O(V²+E) total.
//   - Heap: container/heap with lazy decrease-key, O((V+E) log V), ordered by
//     (distance, insertion index) so selection order is identical.
//
// Both strategies stop as soon as the smallest remaining distance is infinite;
// no relaxation from an unreachable vertex can lower any distance.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidGraphArgument: g is nil.
//   - ErrUnknownSourceVertex:  source is not a vertex of g (wrapped with the value).
//   - ErrBadHook:              WithOnVisit was given a hook for another vertex type.
//
// Preconditions are reported at Error level on the diagnostic sink and no
// partial result is returned.
//
// Weights:
//
// Negative weights are neither detected nor corrected; results for graphs that
// contain them are unspecified.
//
// Thread safety:
//
// The engine only reads the graph. Concurrent runs over the same graph are safe
// as long as nobody mutates it meanwhile.
package dijkstra

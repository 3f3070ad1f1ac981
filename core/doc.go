// SPDX-License-Identifier: MIT

// Package core provides the in-memory weighted, undirected Graph store used by
// the shortest-path engine.
//
// A Graph[V] is an adjacency list over comparable vertex identifiers:
//
//	adjacency[u][v] = weight
//
// Every edge is stored twice (u→v and v→u) with the same weight, and every
// vertex that appears as a neighbor is also a top-level vertex, possibly with
// an empty neighbor map.
//
// Determinism:
//
//   - Vertices() returns vertices in insertion order.
//   - NeighborIDs() returns neighbors in the order their edges were first added.
//   - Edges() reports every undirected edge exactly once, ordered by the
//     insertion index of its first endpoint, then of its second.
//
// Insertion order matters: the engine breaks distance ties by it, so two graphs
// built from the same edge list in the same order always yield the same
// predecessor forest.
//
// Core methods:
//
//	AddVertex(v V) error                    // O(1); idempotent, duplicate ⇒ Warn diagnostic
//	AddEdge(u, v V, w float64) error        // O(1); symmetric, last write wins
//	Neighbors(v V) map[V]float64            // O(deg v); copy, empty map for unknown v
//	NeighborIDs(v V) []V                    // O(deg v); insertion order
//	HasVertex(v V) bool                     // O(1)
//	Vertices() []V                          // O(V); insertion order
//	Weight(u, v V) (float64, bool)          // O(1)
//	VertexCount() int / EdgeCount() int     // O(1)
//	Edges() []Edge[V]                       // O(V+E)
//
// Errors:
//
//	ErrInvalidVertexType – the vertex value cannot be used as a map key
//	                       (an interface holding a slice, map or func; or NaN).
//
// Diagnostics:
//
// Every Graph carries a *slog.Logger (WithLogger). Mutations and queries emit
// leveled records (Trace for neighbor queries, Debug for inserts, Warn for a
// duplicate vertex, Error for an invalid vertex). Logging never changes results.
//
// Concurrency:
//
// A sync.RWMutex guards the store, so concurrent readers (for example several
// engine runs from different sources) are safe. Mutating while an engine run
// is reading produces an unspecified but race-free snapshot mix.
package core

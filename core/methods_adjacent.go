// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Contract:
//   - Lookups of unknown vertices are safe: they return empty results, never errors.

package core

// Neighbors returns a copy of v's neighbor map (neighbor → weight).
//
// Behavior highlights:
//   - Pure: the graph is not modified and the result may be retained.
//   - Unknown (or invalid) v yields an empty, non-nil map.
//
// Complexity: O(deg v).
func (g *Graph[V]) Neighbors(v V) map[V]float64 {
	if checkVertex(v) != nil {
		return map[V]float64{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adjacency[v]
	out := make(map[V]float64, len(src))
	for nb, w := range src {
		out[nb] = w
	}
	g.trace("retrieved neighbors", "vertex", v, "count", len(out))

	return out
}

// NeighborIDs returns v's neighbors in the order their edges were first added.
// Unknown v yields an empty slice.
// Complexity: O(deg v).
func (g *Graph[V]) NeighborIDs(v V) []V {
	if checkVertex(v) != nil {
		return []V{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.nbrOrder[v]))
	copy(out, g.nbrOrder[v])

	return out
}

// Degree returns the number of distinct neighbors of v (a self-loop counts once).
// Unknown v has degree 0.
// Complexity: O(1).
func (g *Graph[V]) Degree(v V) int {
	if checkVertex(v) != nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v])
}

// ForEachNeighbor calls fn for every neighbor of v in neighbor insertion order,
// without copying the neighbor map. fn runs under the graph's read lock and
// must not call back into g. Unknown v is a no-op.
// Complexity: O(deg v).
func (g *Graph[V]) ForEachNeighbor(v V, fn func(nb V, weight float64)) {
	if checkVertex(v) != nil {
		return
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	row := g.adjacency[v]
	for _, nb := range g.nbrOrder[v] {
		fn(nb, row[nb])
	}
	g.trace("visited neighbors", "vertex", v, "count", len(row))
}

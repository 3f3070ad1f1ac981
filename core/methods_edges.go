// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Weight/EdgeCount/Edges.
//
// Determinism:
//   - Edges() is ordered by (index(U), index(V)) with U inserted before V.
//
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.

package core

import "fmt"

// AddEdge connects u and v with the given weight in both directions.
//
// Steps:
//  1. Validate both endpoints (ErrInvalidVertexType).
//  2. Ensure both endpoints exist (same semantics as AddVertex).
//  3. Set adjacency[u][v] = adjacency[v][u] = weight (last write wins).
//
// The weight is stored as given; sign and finiteness are not checked.
// A self-loop (u == v) stores a single adjacency[u][u] entry.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(u, v V, weight float64) error {
	for _, end := range [2]V{u, v} {
		if err := checkVertex(end); err != nil {
			g.mu.RLock()
			g.sink().Error("invalid vertex type in edge", "type", fmt.Sprintf("%T", end), "error", err)
			g.mu.RUnlock()

			return err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.init()

	g.addVertexLocked(u)
	if !sameKey(u, v) {
		g.addVertexLocked(v)
	}

	if _, exists := g.adjacency[u][v]; !exists {
		g.edgeCount++
		g.nbrOrder[u] = append(g.nbrOrder[u], v)
		if !sameKey(u, v) {
			g.nbrOrder[v] = append(g.nbrOrder[v], u)
		}
	}
	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight
	g.logger.Debug("added edge", "u", u, "v", v, "weight", weight)

	return nil
}

// Weight returns the weight of the edge between u and v, if any.
// Complexity: O(1).
func (g *Graph[V]) Weight(u, v V) (float64, bool) {
	if checkVertex(u) != nil || checkVertex(v) != nil {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[u][v]

	return w, ok
}

// EdgeCount returns the number of distinct undirected edges (self-loops count once).
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every undirected edge exactly once.
//
// For each vertex u in insertion order, its neighbors v are scanned in
// neighbor insertion order and the edge is emitted when index(v) >= index(u).
//
// Complexity: O(V + E).
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[V], 0, g.edgeCount)
	for i, u := range g.order {
		for _, v := range g.nbrOrder[u] {
			if g.index[v] < i {
				continue // already emitted from v's side
			}
			out = append(out, Edge[V]{U: u, V: v, Weight: g.adjacency[u][v]})
		}
	}

	return out
}

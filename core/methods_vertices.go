// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
//
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.

package core

import (
	"fmt"
	"reflect"
)

// AddVertex inserts v with an empty neighbor map if it is missing.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op reported at Warn level.
//   - Rejects values that cannot be map keys with ErrInvalidVertexType.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) error {
	if err := checkVertex(v); err != nil {
		g.mu.RLock()
		g.sink().Error("invalid vertex type", "type", fmt.Sprintf("%T", v), "error", err)
		g.mu.RUnlock()

		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.init()
	g.addVertexLocked(v)

	return nil
}

// addVertexLocked registers v and reports whether it was new.
// Callers must hold g.mu for writing and must have validated v.
func (g *Graph[V]) addVertexLocked(v V) bool {
	if _, exists := g.adjacency[v]; exists {
		g.logger.Warn("vertex already exists, skipping", "vertex", v)
		return false
	}

	g.adjacency[v] = make(map[V]float64)
	g.index[v] = len(g.order)
	g.order = append(g.order, v)
	g.logger.Debug("added vertex", "vertex", v)

	return true
}

// HasVertex reports whether v is a vertex of the graph.
// Values that cannot be map keys are never present.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	if checkVertex(v) != nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns all vertices in insertion order.
// The returned slice is a copy and may be retained by the caller.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// IndexOf returns the insertion position of v, or -1 if v is absent.
// The engine uses it as the tie-break key between equal distances.
// Complexity: O(1).
func (g *Graph[V]) IndexOf(v V) int {
	if checkVertex(v) != nil {
		return -1
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[v]
	if !ok {
		return -1
	}

	return i
}

// checkVertex reports ErrInvalidVertexType for values that cannot be used as
// map keys: dynamic values that are not comparable (an interface holding a
// slice, map or func would panic on insertion) and values that never equal
// themselves (NaN), which could be inserted but never found again.
func checkVertex[V comparable](v V) error {
	rv := reflect.ValueOf(any(v))
	if rv.IsValid() && !rv.Comparable() {
		return fmt.Errorf("%w: %T is not comparable", ErrInvalidVertexType, v)
	}
	if !sameKey(v, v) {
		return fmt.Errorf("%w: %v is not equal to itself", ErrInvalidVertexType, v)
	}

	return nil
}

func sameKey[V comparable](a, b V) bool { return a == b }

// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/shortpath/core"
)

// noPredecessor marks a vertex that has not been reached through any edge.
const noPredecessor = -1

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: vertex → shortest distance from source; math.Inf(1) if unreachable.
//   - prev: vertex → predecessor on a shortest path. The source and
//     unreachable vertices have no entry.
//   - err:  ErrInvalidGraphArgument, ErrUnknownSourceVertex or ErrBadHook.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrInvalidGraphArgument).
//  2. g must contain source (ErrUnknownSourceVertex).
//  3. An OnVisit hook, if any, must accept V (ErrBadHook).
//
// Complexity:
//
//   - LinearScan: Time O(V² + E), Space O(V).
//   - Heap:       Time O((V + E) log V), Space O(V + E).
func Dijkstra[V comparable](g *core.Graph[V], source V, opts ...Option) (map[V]float64, map[V]V, error) {
	// 1) Build options and resolve the diagnostic sink.
	cfg := resolveOptions(opts)
	log := sinkFor(g, cfg)

	// 2) Validate graph.
	if g == nil {
		log.Error("invalid graph argument provided to dijkstra")
		return nil, nil, ErrInvalidGraphArgument
	}

	// 3) Validate source.
	if !g.HasVertex(source) {
		log.Error("source vertex not found in graph", "source", source)
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownSourceVertex, source)
	}

	// 4) Validate hook type.
	var visit func(V, float64)
	if cfg.onVisit != nil {
		fn, ok := cfg.onVisit.(func(V, float64))
		if !ok {
			log.Error("OnVisit hook does not match vertex type", "hook", fmt.Sprintf("%T", cfg.onVisit))
			return nil, nil, fmt.Errorf("%w: got %T", ErrBadHook, cfg.onVisit)
		}
		visit = fn
	}

	// 5) Snapshot vertices and initialize state.
	r := newRunner(g, source, log, visit)
	log.Info("starting dijkstra", "source", source, "vertices", len(r.verts), "strategy", cfg.Strategy.String())

	// 6) Main loop.
	switch cfg.Strategy {
	case Heap:
		r.runHeap()
	default:
		r.runLinear()
	}

	dist, prev := r.result()
	log.Info("dijkstra completed", "source", source, "finalized", r.finalized)

	return dist, prev, nil
}

// sinkFor picks the diagnostic sink: explicit option, then the graph's logger.
func sinkFor[V comparable](g *core.Graph[V], cfg Options) *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	if g != nil {
		return g.Logger()
	}

	return slog.New(slog.DiscardHandler)
}

// runner holds the mutable state for a single Dijkstra execution.
// Vertices are addressed by their insertion index so that slices replace maps
// in the hot loop and the index doubles as the tie-break key.
type runner[V comparable] struct {
	g     *core.Graph[V]   // the input graph; read-only here
	log   *slog.Logger     // diagnostic sink
	visit func(V, float64) // optional finalization hook

	verts []V         // index → vertex (insertion order)
	index map[V]int   // vertex → index
	dist  []float64   // index → tentative distance
	prev  []int       // index → predecessor index or noPredecessor
	done  []bool      // index → finalized
	pq    *candidates // only for the Heap strategy

	src       int // index of the source
	finalized int // number of finalized vertices
}

// newRunner snapshots the vertex set and initializes dist/prev.
func newRunner[V comparable](g *core.Graph[V], source V, log *slog.Logger, visit func(V, float64)) *runner[V] {
	verts := g.Vertices()
	n := len(verts)
	r := &runner[V]{
		g:     g,
		log:   log,
		visit: visit,
		verts: verts,
		index: make(map[V]int, n),
		dist:  make([]float64, n),
		prev:  make([]int, n),
		done:  make([]bool, n),
	}

	// dist[v] = +∞, prev[v] = none for all v; dist[source] = 0.
	for i, v := range verts {
		r.index[v] = i
		r.dist[i] = math.Inf(1)
		r.prev[i] = noPredecessor
	}
	r.src = r.index[source]
	r.dist[r.src] = 0

	return r
}

// runLinear repeatedly finalizes the first unvisited vertex (in insertion
// order) with minimal distance, mirroring a stable linear scan.
func (r *runner[V]) runLinear() {
	for remaining := len(r.verts); remaining > 0; remaining-- {
		// 1) Select min-distance unvisited vertex; strict "<" keeps the earliest on ties.
		u := -1
		for i := range r.verts {
			if r.done[i] {
				continue
			}
			if u < 0 || r.dist[i] < r.dist[u] {
				u = i
			}
		}

		// 2) Everything left is unreachable: nothing can be relaxed any more.
		if math.IsInf(r.dist[u], 1) {
			r.log.Debug("remaining vertices are unreachable", "count", remaining)
			return
		}

		// 3) Finalize and relax.
		r.finalize(u)
	}
}

// runHeap is the priority-queue variant with lazy decrease-key.
func (r *runner[V]) runHeap() {
	r.pq = &candidates{}
	heap.Init(r.pq)
	heap.Push(r.pq, candidate{idx: r.src, dist: 0})

	for r.pq.Len() > 0 {
		c := heap.Pop(r.pq).(candidate)

		// Skip stale entries: already finalized, or superseded by a shorter push.
		if r.done[c.idx] || c.dist > r.dist[c.idx] {
			continue
		}
		r.finalize(c.idx)
	}
}

// finalize marks u as done and relaxes every edge leaving it.
func (r *runner[V]) finalize(u int) {
	r.done[u] = true
	r.finalized++
	uv := r.verts[u]
	du := r.dist[u]
	r.log.Debug("visiting vertex", "vertex", uv, "distance", du)
	if r.visit != nil {
		r.visit(uv, du)
	}

	r.g.ForEachNeighbor(uv, func(nb V, w float64) {
		j, ok := r.index[nb]
		if !ok {
			return // added after the snapshot; not part of this run
		}

		// Strict improvement only: equal-cost paths keep the first predecessor.
		cand := du + w
		if !(cand < r.dist[j]) {
			return
		}
		r.dist[j] = cand
		r.prev[j] = u
		r.log.Debug("updated distance", "vertex", nb, "via", uv, "distance", cand)

		if r.pq != nil {
			heap.Push(r.pq, candidate{idx: j, dist: cand})
		}
	})
}

// result converts the index-addressed state into caller-owned maps.
func (r *runner[V]) result() (map[V]float64, map[V]V) {
	dist := make(map[V]float64, len(r.verts))
	prev := make(map[V]V)
	for i, v := range r.verts {
		dist[v] = r.dist[i]
		if p := r.prev[i]; p != noPredecessor {
			prev[v] = r.verts[p]
		}
	}

	return dist, prev
}

// candidate is a heap entry: a vertex index and the distance it was pushed with.
type candidate struct {
	idx  int
	dist float64
}

// candidates is a min-heap of candidate ordered by (dist, idx).
// Ordering by idx on ties reproduces the linear scan's insertion-order choice.
type candidates []candidate

// Len returns the number of items in the heap.
func (pq candidates) Len() int { return len(pq) }

// Less orders by distance, then by insertion index.
func (pq candidates) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq candidates) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *candidates) Push(x any) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *candidates) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

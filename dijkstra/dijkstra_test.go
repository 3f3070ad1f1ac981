// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

var strategies = []dijkstra.Strategy{dijkstra.LinearScan, dijkstra.Heap}

// classic builds the six-vertex reference graph A..F.
func classic(t testing.TB) *core.Graph[string] {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Classic())
	require.NoError(t, err)

	return g
}

// randomGraph builds a reproducible sparse graph with integer weights.
func randomGraph(t testing.TB, seed int64, n int, p float64) *core.Graph[string] {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.IntWeightFn(0, 20))},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return g
}

func TestDijkstra_Classic(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			dist, prev, err := dijkstra.Dijkstra(classic(t), "A", dijkstra.WithStrategy(s))
			require.NoError(t, err)

			assert.Equal(t, map[string]float64{"A": 0, "B": 3, "C": 2, "D": 8, "E": 10, "F": 13}, dist)
			assert.Equal(t, map[string]string{"B": "C", "C": "A", "D": "B", "E": "D", "F": "E"}, prev)
			_, hasSource := prev["A"]
			assert.False(t, hasSource, "source has no predecessor")
		})
	}
}

func TestDijkstra_Errors(t *testing.T) {
	t.Run("nil graph", func(t *testing.T) {
		dist, prev, err := dijkstra.Dijkstra[string](nil, "A")
		assert.ErrorIs(t, err, dijkstra.ErrInvalidGraphArgument)
		assert.Nil(t, dist)
		assert.Nil(t, prev)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, _, err := dijkstra.Dijkstra(classic(t), "Z")
		require.ErrorIs(t, err, dijkstra.ErrUnknownSourceVertex)
		assert.Contains(t, err.Error(), "Z")
	})

	t.Run("unknown source on empty graph", func(t *testing.T) {
		_, _, err := dijkstra.Dijkstra(core.NewGraph[int](), 0)
		assert.ErrorIs(t, err, dijkstra.ErrUnknownSourceVertex)
	})

	t.Run("hook of the wrong vertex type", func(t *testing.T) {
		hook := dijkstra.WithOnVisit(func(int, float64) {})
		_, _, err := dijkstra.Dijkstra(classic(t), "A", hook)
		assert.ErrorIs(t, err, dijkstra.ErrBadHook)
	})

	t.Run("graph is untouched on error", func(t *testing.T) {
		g := classic(t)
		_, _, _ = dijkstra.Dijkstra(g, "Z")
		assert.Equal(t, 6, g.VertexCount())
		assert.False(t, g.HasVertex("Z"))
	})
}

func TestDijkstra_SingleVertex(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddVertex("solo"))

	for _, s := range strategies {
		dist, prev, err := dijkstra.Dijkstra(g, "solo", dijkstra.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"solo": 0}, dist)
		assert.Empty(t, prev)
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddVertex("E"))

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			var visited []string
			dist, prev, err := dijkstra.Dijkstra(g, "A",
				dijkstra.WithStrategy(s),
				dijkstra.WithOnVisit(func(v string, _ float64) { visited = append(visited, v) }),
			)
			require.NoError(t, err)

			assert.Len(t, dist, 5, "every vertex gets a distance entry")
			for _, v := range []string{"C", "D", "E"} {
				assert.True(t, math.IsInf(dist[v], 1), "%s must be unreachable", v)
				_, ok := prev[v]
				assert.False(t, ok, "%s must have no predecessor", v)
			}
			assert.Equal(t, []string{"A", "B"}, visited, "unreachable vertices are never finalized")
		})
	}
}

func TestDijkstra_TieBreakByInsertionOrder(t *testing.T) {
	// S reaches X and Y at equal cost; both reach T at equal total cost.
	// X is inserted first, so it is finalized first and becomes T's predecessor.
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("S", "X", 1))
	require.NoError(t, g.AddEdge("S", "Y", 1))
	require.NoError(t, g.AddEdge("Y", "T", 1))
	require.NoError(t, g.AddEdge("X", "T", 1))

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			var order []string
			_, prev, err := dijkstra.Dijkstra(g, "S",
				dijkstra.WithStrategy(s),
				dijkstra.WithOnVisit(func(v string, _ float64) { order = append(order, v) }),
			)
			require.NoError(t, err)
			assert.Equal(t, []string{"S", "X", "Y", "T"}, order)
			assert.Equal(t, "X", prev["T"])
		})
	}
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("A", "C", 1))

	for _, s := range strategies {
		dist, prev, err := dijkstra.Dijkstra(g, "A", dijkstra.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"A": 0, "B": 0, "C": 0}, dist)
		assert.Equal(t, "B", prev["C"])
	}
}

func TestDijkstra_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "A", 5))
	require.NoError(t, g.AddEdge("A", "B", 2))

	dist, prev, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist["A"])
	assert.Equal(t, map[string]string{"B": "A"}, prev)
}

func TestDijkstra_IntegerVertices(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2, 7))
	require.NoError(t, g.AddEdge(2, 3, 0.5))

	dist, prev, err := dijkstra.Dijkstra(g, 3, dijkstra.WithStrategy(dijkstra.Heap))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 7.5, 2: 0.5, 3: 0}, dist)
	assert.Equal(t, map[int]int{1: 2, 2: 3}, prev)
}

// TestDijkstra_PathProperties checks, on random graphs, that every predecessor
// chain reaches the source within |V|-1 hops and its weights sum exactly to
// the reported distance.
func TestDijkstra_PathProperties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomGraph(t, seed, 40, 0.08)
		src := g.Vertices()[0]

		for _, s := range strategies {
			dist, prev, err := dijkstra.Dijkstra(g, src, dijkstra.WithStrategy(s))
			require.NoError(t, err)
			require.Len(t, dist, g.VertexCount())

			for v, d := range dist {
				if math.IsInf(d, 1) {
					_, ok := prev[v]
					assert.False(t, ok)
					continue
				}
				sum, cur, hops := 0.0, v, 0
				for cur != src {
					p, ok := prev[cur]
					require.True(t, ok, "seed %d: chain from %s broke at %s", seed, v, cur)
					w, ok := g.Weight(p, cur)
					require.True(t, ok, "predecessor edge must exist")
					sum += w
					cur = p
					hops++
					require.LessOrEqual(t, hops, g.VertexCount()-1)
				}
				assert.Equal(t, d, sum, "seed %d: path weight of %s", seed, v)
			}

			// No edge can improve a final distance.
			for _, e := range g.Edges() {
				assert.LessOrEqual(t, dist[e.V], dist[e.U]+e.Weight)
				assert.LessOrEqual(t, dist[e.U], dist[e.V]+e.Weight)
			}
		}
	}
}

// TestDijkstra_MonotoneFinalization checks that vertices are finalized in
// non-decreasing distance order, each with its final distance.
func TestDijkstra_MonotoneFinalization(t *testing.T) {
	g := randomGraph(t, 7, 60, 0.1)
	src := g.Vertices()[0]

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			var seen []float64
			visited := map[string]float64{}
			dist, _, err := dijkstra.Dijkstra(g, src,
				dijkstra.WithStrategy(s),
				dijkstra.WithOnVisit(func(v string, d float64) {
					seen = append(seen, d)
					visited[v] = d
				}),
			)
			require.NoError(t, err)

			for i := 1; i < len(seen); i++ {
				assert.LessOrEqual(t, seen[i-1], seen[i])
			}
			for v, d := range visited {
				assert.Equal(t, dist[v], d)
			}
		})
	}
}

func TestDijkstra_HeapMatchesLinear(t *testing.T) {
	for seed := int64(100); seed < 130; seed++ {
		g := randomGraph(t, seed, 50, 0.1)
		for _, src := range []string{"0", "17", "49"} {
			dl, pl, err := dijkstra.Dijkstra(g, src, dijkstra.WithStrategy(dijkstra.LinearScan))
			require.NoError(t, err)
			dh, ph, err := dijkstra.Dijkstra(g, src, dijkstra.WithStrategy(dijkstra.Heap))
			require.NoError(t, err)

			assert.Equal(t, dl, dh, "seed %d source %s", seed, src)
			assert.Equal(t, pl, ph, "seed %d source %s", seed, src)
		}
	}
}

func TestDijkstra_LoggerOption(t *testing.T) {
	rec := &countingHandler{}
	_, _, err := dijkstra.Dijkstra(classic(t), "A", dijkstra.WithLogger(slog.New(rec)))
	require.NoError(t, err)

	assert.Equal(t, 2, rec.counts[slog.LevelInfo], "start and completion")
	assert.Positive(t, rec.counts[slog.LevelDebug], "visits and updates")

	_, _, err = dijkstra.Dijkstra(classic(t), "Z", dijkstra.WithLogger(slog.New(rec)))
	require.Error(t, err)
	assert.Equal(t, 1, rec.counts[slog.LevelError])
}

func TestDijkstra_FallsBackToGraphLogger(t *testing.T) {
	rec := &countingHandler{}
	g, err := builder.BuildGraph([]core.GraphOption{core.WithLogger(slog.New(rec))}, nil, builder.Path(3))
	require.NoError(t, err)
	before := rec.counts[slog.LevelInfo]

	_, _, err = dijkstra.Dijkstra(g, "0")
	require.NoError(t, err)
	assert.Equal(t, before+2, rec.counts[slog.LevelInfo])
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]dijkstra.Strategy{
		"":       dijkstra.LinearScan,
		"linear": dijkstra.LinearScan,
		"Scan":   dijkstra.LinearScan,
		" heap ": dijkstra.Heap,
		"PQ":     dijkstra.Heap,
	} {
		got, err := dijkstra.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := dijkstra.ParseStrategy("fibonacci")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownStrategy)
	assert.Equal(t, "heap", dijkstra.Heap.String())
	assert.Equal(t, "Strategy(9)", dijkstra.Strategy(9).String())
}

// countingHandler is a slog.Handler that counts records per level.
// Single-goroutine use only.
type countingHandler struct {
	counts map[slog.Level]int
}

func (h *countingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *countingHandler) Handle(_ context.Context, r slog.Record) error {
	if h.counts == nil {
		h.counts = map[slog.Level]int{}
	}
	h.counts[r.Level]++

	return nil
}

func (h *countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *countingHandler) WithGroup(string) slog.Handler      { return h }

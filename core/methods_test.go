// SPDX-License-Identifier: MIT

package core_test

import (
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

func TestAddVertex_NewVertexHasEmptyNeighbors(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddVertex(VertexA))

	assert.True(t, g.HasVertex(VertexA))
	assert.Equal(t, 1, g.VertexCount())
	assert.Empty(t, g.Neighbors(VertexA))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddVertex_Idempotent(t *testing.T) {
	g, rec := newRecordedGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight2))
	before := g.Neighbors(VertexA)

	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA))

	assert.Equal(t, before, g.Neighbors(VertexA), "duplicate add must not touch neighbors")
	assert.Equal(t, []string{VertexA, VertexB}, g.Vertices())
	assert.Equal(t, 2, rec.count(slog.LevelWarn), "each duplicate add is reported once")
}

func TestAddVertex_InvalidType(t *testing.T) {
	t.Run("slice in interface", func(t *testing.T) {
		rec := &recorder{}
		g := core.NewGraph[any](core.WithLogger(slog.New(rec)))
		err := g.AddVertex([]int{1, 2})
		assert.ErrorIs(t, err, core.ErrInvalidVertexType)
		assert.Equal(t, 0, g.VertexCount())
		assert.Equal(t, 1, rec.count(slog.LevelError))
	})

	t.Run("map in interface", func(t *testing.T) {
		g := core.NewGraph[any]()
		assert.ErrorIs(t, g.AddVertex(map[string]int{"a": 1}), core.ErrInvalidVertexType)
	})

	t.Run("struct holding a func", func(t *testing.T) {
		type wrapper struct{ F any }
		g := core.NewGraph[any]()
		assert.ErrorIs(t, g.AddVertex(wrapper{F: func() {}}), core.ErrInvalidVertexType)
	})

	t.Run("NaN", func(t *testing.T) {
		g := core.NewGraph[float64]()
		assert.ErrorIs(t, g.AddVertex(math.NaN()), core.ErrInvalidVertexType)
		assert.False(t, g.HasVertex(math.NaN()))
	})

	t.Run("mixed hashable values are fine", func(t *testing.T) {
		g := core.NewGraph[any]()
		require.NoError(t, g.AddVertex("A"))
		require.NoError(t, g.AddVertex(7))
		require.NoError(t, g.AddVertex(nil))
		require.NoError(t, g.AddVertex([2]int{1, 2}))
		assert.Equal(t, 4, g.VertexCount())
	})
}

func TestAddEdge_Symmetric(t *testing.T) {
	g := newSquare()

	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{VertexA, VertexB, Weight1},
		{VertexB, VertexC, Weight2},
		{VertexC, VertexD, Weight1},
		{VertexD, VertexA, Weight4},
	} {
		assert.Equal(t, e.w, g.Neighbors(e.u)[e.v], "%s→%s", e.u, e.v)
		assert.Equal(t, e.w, g.Neighbors(e.v)[e.u], "%s→%s", e.v, e.u)
	}
	assert.Equal(t, 4, g.EdgeCount())
}

func TestAddEdge_LastWriteWins(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight4))
	require.NoError(t, g.AddEdge(VertexB, VertexA, Weight9))

	w, ok := g.Weight(VertexA, VertexB)
	require.True(t, ok)
	assert.Equal(t, Weight9, w)
	w, _ = g.Weight(VertexB, VertexA)
	assert.Equal(t, Weight9, w)
	assert.Equal(t, 1, g.EdgeCount(), "overwrite must not create a parallel edge")
	assert.Equal(t, []string{VertexB}, g.NeighborIDs(VertexA))
}

func TestAddEdge_WeightsAreNotValidated(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(VertexA, VertexB, -3))
	w, _ := g.Weight(VertexA, VertexB)
	assert.Equal(t, -3.0, w)
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(VertexX, VertexX, Weight2))

	assert.Equal(t, map[string]float64{VertexX: Weight2}, g.Neighbors(VertexX))
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.Degree(VertexX))
}

func TestAddEdge_InvalidEndpointLeavesGraphUntouched(t *testing.T) {
	g := core.NewGraph[any]()
	err := g.AddEdge("A", []string{"B"}, Weight1)

	assert.ErrorIs(t, err, core.ErrInvalidVertexType)
	assert.Equal(t, 0, g.VertexCount(), "valid endpoint must not be added when the other is invalid")
}

func TestNeighbors_MissingVertexIsEmpty(t *testing.T) {
	g := newSquare()
	nb := g.Neighbors(VertexX)

	assert.NotNil(t, nb)
	assert.Empty(t, nb)
	assert.False(t, g.HasVertex(VertexX), "lookup must not create the vertex")
	assert.Empty(t, g.NeighborIDs(VertexX))
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := newSquare()
	nb := g.Neighbors(VertexA)
	nb[VertexC] = 100
	delete(nb, VertexB)

	assert.Equal(t, map[string]float64{VertexB: Weight1, VertexD: Weight4}, g.Neighbors(VertexA))
}

func TestVertices_InsertionOrder(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddVertex("Z"))
	require.NoError(t, g.AddEdge("M", "A", 1))
	require.NoError(t, g.AddEdge("A", "Z", 1))

	assert.Equal(t, []string{"Z", "M", "A"}, g.Vertices())
	assert.Equal(t, 0, g.IndexOf("Z"))
	assert.Equal(t, 2, g.IndexOf("A"))
	assert.Equal(t, -1, g.IndexOf("Q"))
	assert.Equal(t, []string{"M", "Z"}, g.NeighborIDs("A"))
}

func TestEdges_EachPairOnce(t *testing.T) {
	g := newSquare()
	require.NoError(t, g.AddEdge(VertexB, VertexB, Weight2))

	edges := g.Edges()
	assert.Equal(t, []core.Edge[string]{
		{U: VertexA, V: VertexB, Weight: Weight1},
		{U: VertexA, V: VertexD, Weight: Weight4},
		{U: VertexB, V: VertexC, Weight: Weight2},
		{U: VertexB, V: VertexB, Weight: Weight2},
		{U: VertexC, V: VertexD, Weight: Weight1},
	}, edges)
	assert.Len(t, edges, g.EdgeCount())
}

func TestForEachNeighbor_Order(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 3, 3))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(4, 1, 4))

	var seen []int
	var total float64
	g.ForEachNeighbor(1, func(nb int, w float64) {
		seen = append(seen, nb)
		total += w
	})
	assert.Equal(t, []int{3, 2, 4}, seen)
	assert.Equal(t, 9.0, total)

	g.ForEachNeighbor(99, func(int, float64) { t.Fatal("unknown vertex must not yield neighbors") })
}

func TestZeroValueGraph(t *testing.T) {
	var g core.Graph[string]

	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Neighbors(VertexA))
	assert.NotNil(t, g.Logger())

	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
	assert.Equal(t, []string{VertexA, VertexB}, g.Vertices())
}

func TestDiagnostics_Levels(t *testing.T) {
	g, rec := newRecordedGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
	_ = g.Neighbors(VertexA)

	assert.Equal(t, 1, rec.count(slog.LevelInfo), "graph creation")
	assert.Equal(t, 3, rec.count(slog.LevelDebug), "two vertices and one edge")
	assert.Equal(t, 1, rec.count(core.LevelTrace), "neighbor query")
	assert.Zero(t, rec.count(slog.LevelWarn))
}

// SPDX-License-Identifier: MIT
package serial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parboruvka/builder"
	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/serial"
)

var methods = []string{serial.MethodBoruvka, serial.MethodKruskal, serial.MethodPrim}

// scenario is the 4-vertex graph whose MST is {2-3, 0-3, 0-1} with weight 19.
func scenario() *core.Graph {
	return core.MustGraph(4, []core.Edge{
		{Src: 0, Dest: 1, Weight: 10},
		{Src: 0, Dest: 2, Weight: 6},
		{Src: 0, Dest: 3, Weight: 5},
		{Src: 1, Dest: 3, Weight: 15},
		{Src: 2, Dest: 3, Weight: 4},
	})
}

func TestCompute_Scenario(t *testing.T) {
	for _, m := range methods {
		t.Run(m, func(t *testing.T) {
			f, err := serial.Compute(scenario(), serial.WithMethod(m))
			require.NoError(t, err)
			assert.EqualValues(t, 19, f.Weight)
			assert.Len(t, f.Edges, 3)
			assert.Equal(t, 1, f.Components)
			assert.True(t, f.Spanning())
			assert.ElementsMatch(t, []core.Edge{
				{Src: 2, Dest: 3, Weight: 4},
				{Src: 0, Dest: 3, Weight: 5},
				{Src: 0, Dest: 1, Weight: 10},
			}, f.Edges)
		})
	}
}

func TestCompute_Errors(t *testing.T) {
	for _, m := range methods {
		_, err := serial.Compute(nil, serial.WithMethod(m))
		assert.ErrorIs(t, err, serial.ErrInvalidGraph, m)
	}
	_, err := serial.Compute(scenario(), serial.WithMethod("dijkstra"))
	assert.ErrorIs(t, err, serial.ErrUnknownMethod)
}

func TestTrivialGraphs(t *testing.T) {
	for _, m := range methods {
		t.Run(m, func(t *testing.T) {
			f, err := serial.Compute(core.MustGraph(0, nil), serial.WithMethod(m))
			require.NoError(t, err)
			assert.Empty(t, f.Edges)
			assert.Equal(t, 0, f.Components)
			assert.True(t, f.Spanning())

			f, err = serial.Compute(core.MustGraph(1, nil), serial.WithMethod(m))
			require.NoError(t, err)
			assert.Empty(t, f.Edges)
			assert.EqualValues(t, 0, f.Weight)
			assert.Equal(t, 0, f.Rounds)
			assert.Equal(t, 1, f.Components)
		})
	}
}

func TestDisconnected_Forest(t *testing.T) {
	g := core.MustGraph(4, []core.Edge{
		{Src: 0, Dest: 1, Weight: 1},
		{Src: 2, Dest: 3, Weight: 2},
	})
	for _, m := range methods {
		t.Run(m, func(t *testing.T) {
			f, err := serial.Compute(g, serial.WithMethod(m))
			require.NoError(t, err)
			assert.EqualValues(t, 3, f.Weight)
			assert.Len(t, f.Edges, 2)
			assert.Equal(t, 2, f.Components)
			assert.False(t, f.Spanning())
		})
	}

	f, err := serial.Boruvka(g)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Rounds, "one merging round plus one empty round")
}

func TestSelfLoopsAndParallelEdges(t *testing.T) {
	g := core.MustGraph(3, []core.Edge{
		{Src: 0, Dest: 0, Weight: -5},
		{Src: 0, Dest: 1, Weight: 7},
		{Src: 1, Dest: 0, Weight: 3},
		{Src: 1, Dest: 2, Weight: 4},
		{Src: 2, Dest: 2, Weight: 0},
	})
	for _, m := range methods {
		f, err := serial.Compute(g, serial.WithMethod(m))
		require.NoError(t, err, m)
		assert.EqualValues(t, 7, f.Weight, m)
		for _, e := range f.Edges {
			assert.False(t, e.IsLoop(), m)
		}
	}
}

func TestBoruvka_TieBreaks(t *testing.T) {
	// All weights equal: first-seen keeps input order, lowest-id prefers low endpoints.
	g := core.MustGraph(3, []core.Edge{
		{Src: 2, Dest: 1, Weight: 1},
		{Src: 0, Dest: 2, Weight: 1},
		{Src: 0, Dest: 1, Weight: 1},
	})
	first, err := serial.Boruvka(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{Src: 0, Dest: 2, Weight: 1}, {Src: 2, Dest: 1, Weight: 1}}, first.Edges)

	low, err := serial.Boruvka(g, serial.WithLowestID())
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{Src: 0, Dest: 1, Weight: 1}, {Src: 0, Dest: 2, Weight: 1}}, low.Edges)
	assert.Equal(t, first.Weight, low.Weight)
}

func TestOracles_AgreeOnRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.Build(builder.RandomConnected(40, 120), builder.WithSeed(seed), builder.WithMaxWeight(20))
		require.NoError(t, err)

		b, err := serial.Boruvka(g)
		require.NoError(t, err)
		k, err := serial.Kruskal(g)
		require.NoError(t, err)
		p, err := serial.Prim(g)
		require.NoError(t, err)

		assert.Equal(t, k.Weight, b.Weight, "seed %d", seed)
		assert.Equal(t, k.Weight, p.Weight, "seed %d", seed)
		assert.Len(t, b.Edges, 39)
		assert.LessOrEqual(t, b.Rounds, 6, "Borůvka needs at most ceil(log2 V) rounds")
		assert.Equal(t, core.SumWeights(b.Edges), b.Weight)
	}
}

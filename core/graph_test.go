// SPDX-License-Identifier: MIT
// Package core_test verifies Graph construction, validation and copy semantics.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parboruvka/core"
)

// square returns the 4-cycle 0-1-2-3-0 with distinct weights.
func square() []core.Edge {
	return []core.Edge{
		{Src: 0, Dest: 1, Weight: 1},
		{Src: 1, Dest: 2, Weight: 2},
		{Src: 2, Dest: 3, Weight: 3},
		{Src: 3, Dest: 0, Weight: 4},
	}
}

func TestNewGraph_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		v       int
		edges   []core.Edge
		wantErr error
	}{
		{name: "empty", v: 0, edges: nil},
		{name: "single vertex", v: 1, edges: nil},
		{name: "square", v: 4, edges: square()},
		{name: "negative weight", v: 2, edges: []core.Edge{{Src: 0, Dest: 1, Weight: -7}}},
		{name: "self loop tolerated", v: 1, edges: []core.Edge{{Src: 0, Dest: 0, Weight: 3}}},
		{name: "negative V", v: -1, wantErr: core.ErrNegativeVertexCount},
		{name: "dest out of range", v: 2, edges: []core.Edge{{Src: 0, Dest: 2}}, wantErr: core.ErrVertexOutOfRange},
		{name: "negative src", v: 2, edges: []core.Edge{{Src: -1, Dest: 1}}, wantErr: core.ErrVertexOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.v, tc.edges)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.v, g.VertexCount())
			assert.Equal(t, len(tc.edges), g.EdgeCount())
		})
	}
}

// TestGraph_Immutable checks that neither the input slice nor returned copies alias storage.
func TestGraph_Immutable(t *testing.T) {
	in := square()
	g := core.MustGraph(4, in)

	in[0].Weight = 100
	e0, err := g.Edge(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e0.Weight, "mutating the input must not change the graph")

	out := g.Edges()
	out[1].Weight = 200
	e1, _ := g.Edge(1)
	assert.Equal(t, int64(2), e1.Weight, "mutating Edges() must not change the graph")

	part, err := g.Slice(1, 3)
	require.NoError(t, err)
	require.Len(t, part, 2)
	part[0].Weight = 300
	e1, _ = g.Edge(1)
	assert.Equal(t, int64(2), e1.Weight, "mutating Slice() must not change the graph")
}

func TestGraph_Bounds(t *testing.T) {
	g := core.MustGraph(4, square())

	_, err := g.Edge(4)
	assert.ErrorIs(t, err, core.ErrEdgeIndex)
	_, err = g.Edge(-1)
	assert.ErrorIs(t, err, core.ErrEdgeIndex)

	_, err = g.Slice(3, 2)
	assert.ErrorIs(t, err, core.ErrEdgeIndex)
	_, err = g.Slice(0, 5)
	assert.ErrorIs(t, err, core.ErrEdgeIndex)

	empty, err := g.Slice(4, 4)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEdge_Canonical(t *testing.T) {
	e := core.Edge{Src: 5, Dest: 2, Weight: 9}
	assert.Equal(t, core.Edge{Src: 2, Dest: 5, Weight: 9}, e.Canonical())
	assert.Equal(t, e.Canonical(), e.Canonical().Canonical())
	assert.False(t, e.IsLoop())
	assert.True(t, core.Edge{Src: 3, Dest: 3}.IsLoop())
	assert.Equal(t, "5-2(9)", e.String())
}

func TestGraph_TotalWeight(t *testing.T) {
	g := core.MustGraph(4, square())
	assert.Equal(t, int64(10), g.TotalWeight())
	assert.Equal(t, int64(3), core.SumWeights(square()[:2]))
	assert.Zero(t, core.SumWeights(nil))

	var zero core.Graph
	assert.Zero(t, zero.VertexCount())
	assert.Zero(t, zero.EdgeCount())
}

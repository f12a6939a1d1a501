// SPDX-License-Identifier: MIT
package core

import "fmt"

// NewGraph validates and copies edges into a new immutable Graph with v vertices.
//
// Steps:
//  1. Reject v < 0 with ErrNegativeVertexCount.
//  2. Check every endpoint lies in [0, v); report the first offender with its index.
//  3. Copy the slice so later mutation by the caller cannot leak in.
//
// Complexity: O(E) time, O(E) memory.
func NewGraph(v int, edges []Edge) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("NewGraph: v=%d: %w", v, ErrNegativeVertexCount)
	}
	for i, e := range edges {
		if e.Src < 0 || e.Src >= v || e.Dest < 0 || e.Dest >= v {
			return nil, fmt.Errorf("NewGraph: edge %d %s with v=%d: %w", i, e, v, ErrVertexOutOfRange)
		}
	}

	owned := make([]Edge, len(edges))
	copy(owned, edges)

	return &Graph{vertices: v, edges: owned}, nil
}

// MustGraph is like NewGraph but panics on invalid input.
// Intended for fixtures in tests and examples.
func MustGraph(v int, edges []Edge) *Graph {
	g, err := NewGraph(v, edges)
	if err != nil {
		panic(err)
	}

	return g
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.vertices }

// EdgeCount returns E.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the i-th edge in input order.
// Complexity: O(1).
func (g *Graph) Edge(i int) (Edge, error) {
	if i < 0 || i >= len(g.edges) {
		return Edge{}, fmt.Errorf("Edge(%d) with E=%d: %w", i, len(g.edges), ErrEdgeIndex)
	}

	return g.edges[i], nil
}

// Edges returns a copy of the full edge list in input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Slice returns a copy of edges [lo, hi).
// Complexity: O(hi-lo).
func (g *Graph) Slice(lo, hi int) ([]Edge, error) {
	if lo < 0 || hi < lo || hi > len(g.edges) {
		return nil, fmt.Errorf("Slice(%d,%d) with E=%d: %w", lo, hi, len(g.edges), ErrEdgeIndex)
	}
	out := make([]Edge, hi-lo)
	copy(out, g.edges[lo:hi])

	return out, nil
}

// TotalWeight sums the weight of every edge.
// Complexity: O(E).
func (g *Graph) TotalWeight() int64 {
	var total int64
	for _, e := range g.edges {
		total += e.Weight
	}

	return total
}

// SumWeights sums the weights of an arbitrary edge slice, such as an MST result.
func SumWeights(edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

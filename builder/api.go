// SPDX-License-Identifier: MIT
// Package: parboruvka/builder
//
// api.go: public entry points.
//
// Contract:
//   • BuildGraph resolves options once and applies constructors in order.
//   • Each constructor appends fresh vertices; the result is their disjoint union.
//   • The returned *core.Graph is immutable.

package builder

import (
	"fmt"

	"github.com/katalvlaran/parboruvka/core"
)

// Constructor appends one topology to a draft graph.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves bopts and applies cons in order.
// Complexity: O(len(bopts) + Σcost(constructor)).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	d := &draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(d.vertices, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Build is BuildGraph for a single constructor.
func Build(cons Constructor, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, cons)
}

// DisjointUnion places the given graphs side by side: vertices of the k-th
// graph are shifted by the vertex counts of the graphs before it. Edge order
// is preserved.
// Complexity: O(ΣV + ΣE).
func DisjointUnion(graphs ...*core.Graph) (*core.Graph, error) {
	d := &draft{}
	for i, g := range graphs {
		if g == nil {
			return nil, fmt.Errorf("DisjointUnion: nil graph at index %d: %w", i, ErrConstructFailed)
		}
		base := d.grow(g.VertexCount())
		for _, e := range g.Edges() {
			d.edges = append(d.edges, core.Edge{Src: e.Src + base, Dest: e.Dest + base, Weight: e.Weight})
		}
	}

	return core.NewGraph(d.vertices, d.edges)
}

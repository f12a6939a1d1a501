// SPDX-License-Identifier: MIT
// Package core declares Edge, Graph and the sentinel errors returned while
// validating graph input.
//
// Errors:
//
//	ErrNegativeVertexCount - vertex count below zero.
//	ErrVertexOutOfRange    - an edge endpoint is outside [0, V).
//	ErrEdgeIndex           - positional access outside [0, E).
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates that a Graph was requested with V < 0.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrEdgeIndex indicates an edge index or slice bound outside [0, E].
	ErrEdgeIndex = errors.New("core: edge index out of range")
)

// Edge is an undirected weighted connection between two vertices.
//
// Src and Dest carry no orientation; (u,v,w) and (v,u,w) describe the same edge.
type Edge struct {
	// Src is one endpoint.
	Src int

	// Dest is the other endpoint.
	Dest int

	// Weight is the cost of the edge. Any int64 value is valid.
	Weight int64
}

// Canonical returns e with its endpoints ordered so that Src <= Dest.
// Complexity: O(1).
func (e Edge) Canonical() Edge {
	if e.Src > e.Dest {
		e.Src, e.Dest = e.Dest, e.Src
	}

	return e
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.Src == e.Dest }

// String renders the edge as "src-dest(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.Src, e.Dest, e.Weight)
}

// Graph is an immutable edge list over the vertices [0, V).
//
// The zero value is a valid empty graph (V = 0, E = 0).
type Graph struct {
	vertices int    // V
	edges    []Edge // input order, never mutated after NewGraph
}

// SPDX-License-Identifier: MIT

// Package core provides the immutable edge-list Graph consumed by every
// MST algorithm in parboruvka.
//
// The Graph G = (V,E) is stored exactly as the graph file describes it:
//
//   - V vertices identified by the integers [0, V).
//   - E undirected, weighted edges kept in input order.
//   - Weights are signed int64 values; negative weights are legal.
//   - Parallel edges and self-loops are tolerated (self-loops never join an MST).
//
// Why an edge list instead of adjacency maps?
//
//   - Borůvka only ever scans edges, so a flat slice gives a cache-friendly,
//     allocation-free inner loop.
//   - Contiguous slices of the list are the unit of work handed to each worker;
//     the partitioning code needs positional access, not neighbourhood queries.
//   - Immutability means a *Graph can be read by any number of goroutines
//     without locks. Every accessor that exposes edges returns a copy.
//
// Construction:
//
//	g, err := core.NewGraph(4, []core.Edge{
//	    {Src: 0, Dest: 1, Weight: 10},
//	    {Src: 2, Dest: 3, Weight: 4},
//	})
//
// NewGraph validates the vertex count and every endpoint and returns
// ErrNegativeVertexCount or ErrVertexOutOfRange (wrapped with the offending
// edge index) on bad input.
//
// Core Methods:
//
//	VertexCount() int          // O(1)
//	EdgeCount() int            // O(1)
//	Edge(i int) Edge           // O(1)
//	Edges() []Edge             // O(E) copy
//	Slice(lo, hi int) []Edge   // O(hi-lo) copy
//	TotalWeight() int64        // O(E)
package core

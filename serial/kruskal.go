// SPDX-License-Identifier: MIT
package serial

import (
	"sort"

	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/dsu"
)

// Kruskal computes the minimum spanning forest of graph by scanning edges in
// ascending weight order and keeping those that join two components.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil.
//
// Steps:
//  1. Copy the edge list, dropping self-loops.
//  2. Sort by ascending weight (stable, so equal weights keep input order).
//  3. Union the endpoints of each edge; keep it when they were disjoint.
//  4. Stop early once V-1 edges are kept.
//
// Complexity: O(E log E + α(V)·E) time, O(E + V) memory.
func Kruskal(graph *core.Graph) (Forest, error) {
	if graph == nil {
		return Forest{}, ErrInvalidGraph
	}
	n := graph.VertexCount()

	// 1. Filter self-loops: they can never join two components.
	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if !e.IsLoop() {
			edges = append(edges, e)
		}
	}

	// 2. Stable sort keeps the input order among equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint set over [0, n).
	uf, err := dsu.New(n)
	if err != nil {
		return Forest{}, err
	}

	var f Forest
	for _, e := range edges {
		if !uf.Union(e.Src, e.Dest) {
			continue
		}
		f.Edges = append(f.Edges, e)
		f.Weight += e.Weight
		// 4. A tree has exactly n-1 edges.
		if len(f.Edges) == n-1 {
			break
		}
	}
	f.Components = uf.Sets()

	return f, nil
}

// SPDX-License-Identifier: MIT
package serial

import (
	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/dsu"
)

// Boruvka computes the minimum spanning forest of graph in rounds.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil.
//
// Steps:
//  1. Every vertex starts as its own component.
//  2. While fewer than V-1 edges are accepted:
//     a. Scan the edges in input order; for each edge whose endpoints lie in
//     different components, offer it to both components. A slot takes the
//     edge when empty or when the edge is strictly cheaper (or, with
//     WithLowestID, equally cheap with lower canonical endpoints).
//     b. Walk the slots in vertex order; re-check each chosen edge against the
//     current components and union the ones that still cross.
//     c. If nothing was accepted, the graph is disconnected: stop.
//  3. Return the accepted edges and the number of components left.
//
// Complexity: O(E log V) time, O(V) extra memory.
func Boruvka(graph *core.Graph, opts ...Option) (Forest, error) {
	if graph == nil {
		return Forest{}, ErrInvalidGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := graph.VertexCount()
	edges := graph.Edges()
	uf, err := dsu.New(n)
	if err != nil {
		return Forest{}, err
	}

	// cheapest[c] is meaningful only when has[c] is true.
	cheapest := make([]core.Edge, n)
	has := make([]bool, n)

	var f Forest
	for len(f.Edges) < n-1 {
		f.Rounds++
		clear(has)

		// 2a. Cheapest crossing edge per component.
		for _, e := range edges {
			c1, c2 := uf.Find(e.Src), uf.Find(e.Dest)
			if c1 == c2 {
				continue
			}
			for _, c := range [2]int{c1, c2} {
				if !has[c] || better(e, cheapest[c], o.LowestID) {
					cheapest[c], has[c] = e, true
				}
			}
		}

		// 2b. Merge in vertex order.
		accepted := 0
		for c := 0; c < n; c++ {
			if !has[c] {
				continue
			}
			e := cheapest[c]
			if uf.Union(e.Src, e.Dest) {
				f.Edges = append(f.Edges, e)
				f.Weight += e.Weight
				accepted++
			}
		}

		// 2c. No progress: disconnected.
		if accepted == 0 {
			break
		}
	}
	f.Components = uf.Sets()

	return f, nil
}

// better reports whether a should replace b.
func better(a, b core.Edge, lowestID bool) bool {
	if a.Weight != b.Weight || !lowestID {
		return a.Weight < b.Weight
	}
	ca, cb := a.Canonical(), b.Canonical()
	if ca.Src != cb.Src {
		return ca.Src < cb.Src
	}

	return ca.Dest < cb.Dest
}

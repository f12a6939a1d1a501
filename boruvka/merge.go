// SPDX-License-Identifier: MIT
package boruvka

import (
	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/dsu"
)

// ApplyMerges walks table in slot order and unions every candidate whose
// endpoints are still in different components of uf. It returns the accepted
// edges in that order. Given identical inputs every replica ends identical.
func ApplyMerges(table CandidateTable, uf *dsu.DisjointSet) []core.Edge {
	var accepted []core.Edge
	for _, c := range table {
		if !c.OK {
			continue
		}
		// Two components may have chosen the same edge; the second sees one root.
		if uf.Find(c.Edge.Src) == uf.Find(c.Edge.Dest) {
			continue
		}
		uf.Union(c.Edge.Src, c.Edge.Dest)
		accepted = append(accepted, c.Edge)
	}

	return accepted
}

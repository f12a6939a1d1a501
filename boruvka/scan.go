// SPDX-License-Identifier: MIT
package boruvka

import (
	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/dsu"
)

// ScanCandidates offers every crossing edge in edges to the slots of both of
// its components. uf is only read, through Root, so replicas are not touched
// by the scan. table must have uf.Len() slots.
//
// Complexity: O(len(edges) * log V).
func ScanCandidates(edges []core.Edge, uf *dsu.DisjointSet, table CandidateTable, tb TieBreak) {
	for _, e := range edges {
		c1, c2 := uf.Root(e.Src), uf.Root(e.Dest)
		if c1 == c2 {
			continue
		}
		table.Offer(c1, e, tb)
		table.Offer(c2, e, tb)
	}
}

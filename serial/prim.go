// SPDX-License-Identifier: MIT
package serial

import (
	"container/heap"

	"github.com/katalvlaran/parboruvka/core"
)

// Prim computes the minimum spanning forest of graph by growing one tree at a
// time from the lowest unvisited vertex using a min-heap of frontier edges.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil.
//
// Steps:
//  1. Build an adjacency list (each undirected edge is listed at both ends).
//  2. For every vertex not yet visited, start a new tree there:
//     a. Push all edges leaving the root.
//     b. Pop the cheapest edge; skip it when its far end is visited.
//     c. Otherwise add it, mark the far end, and push its edges.
//  3. Components is the number of trees started.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph) (Forest, error) {
	if graph == nil {
		return Forest{}, ErrInvalidGraph
	}
	n := graph.VertexCount()

	// 1. Adjacency: adj[u] holds arcs u→v carrying the original edge.
	adj := make([][]arc, n)
	for _, e := range graph.Edges() {
		if e.IsLoop() {
			continue
		}
		adj[e.Src] = append(adj[e.Src], arc{to: e.Dest, edge: e})
		adj[e.Dest] = append(adj[e.Dest], arc{to: e.Src, edge: e})
	}

	var (
		f       Forest
		visited = make([]bool, n)
		pq      = &arcPQ{}
	)
	push := func(u int) {
		for _, a := range adj[u] {
			if !visited[a.to] {
				heap.Push(pq, a)
			}
		}
	}

	// 2. One tree per unvisited root.
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		f.Components++
		visited[root] = true
		push(root)
		for pq.Len() > 0 {
			a := heap.Pop(pq).(arc)
			if visited[a.to] {
				continue
			}
			visited[a.to] = true
			f.Edges = append(f.Edges, a.edge)
			f.Weight += a.edge.Weight
			push(a.to)
		}
	}

	return f, nil
}

// arc is an edge seen from one endpoint.
type arc struct {
	to   int
	edge core.Edge
}

// arcPQ implements heap.Interface for a min-heap of arcs ordered by weight.
type arcPQ []arc

func (pq arcPQ) Len() int           { return len(pq) }
func (pq arcPQ) Less(i, j int) bool { return pq[i].edge.Weight < pq[j].edge.Weight }
func (pq arcPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends an arc. Called by heap.Push.
func (pq *arcPQ) Push(x any) { *pq = append(*pq, x.(arc)) }

// Pop removes the last arc. Called by heap.Pop.
func (pq *arcPQ) Pop() any {
	old := *pq
	n := len(old)
	a := old[n-1]
	*pq = old[:n-1]

	return a
}

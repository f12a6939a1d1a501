// SPDX-License-Identifier: MIT

// Package serial provides single-threaded minimum spanning forest algorithms
// over a *core.Graph: Borůvka, Kruskal and Prim.
//
// They serve as reference oracles for the distributed engine: on the same
// graph every one of them yields the same total weight, and Boruvka with the
// same tie-break rule yields the very same edges as a distributed run.
//
// Unlike a strict MST routine, none of them fail on disconnected input: the
// result is a spanning forest and Forest.Components tells how many trees it has.
//
// Supported algorithms:
//
//	MethodBoruvka  - rounds of cheapest outgoing edge per component.
//	MethodKruskal  - globally sorted edges + disjoint set.
//	MethodPrim     - grow each tree from its lowest vertex with a min-heap.
//
// Complexity: Boruvka O(E log V), Kruskal O(E log E), Prim O(E log E).
package serial

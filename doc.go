// SPDX-License-Identifier: MIT

// Package parboruvka computes minimum spanning trees (and forests) of weighted
// undirected graphs with Borůvka's algorithm, serially or split across a pool
// of cooperating workers that only talk through messages.
//
// Under the hood, everything is organized in subpackages:
//
//	core/      - immutable edge list (Edge, Graph)
//	dsu/       - disjoint set with path compression, union by rank and digests
//	partition/ - contiguous edge slices per worker
//	comm/      - message passing: Communicator, in-memory Network, codecs, collectives
//	boruvka/   - the distributed engine: scan, combine (flat or tree), merge, rounds
//	serial/    - single-threaded Borůvka, Kruskal and Prim oracles
//	builder/   - random connected graphs and deterministic fixtures
//	graphio/   - edge-list text format and GraphML import
//	resultlog/ - SQLite log of timed runs
//	config/    - YAML configuration
//
// The parboruvka command in cmd/parboruvka ties them together.
//
// Quick example:
//
//	g, _ := graphio.ParseFile("datasets/g.txt")
//	res, err := boruvka.Run(ctx, g, boruvka.WithWorkers(4), boruvka.WithStrategy(boruvka.StrategyTree))
//	fmt.Println(res.TotalWeight, res.Rounds, res.Reason)
package parboruvka

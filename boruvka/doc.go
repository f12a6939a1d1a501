// SPDX-License-Identifier: MIT

// Package boruvka computes a minimum spanning tree (or forest) with Borůvka's
// algorithm on a fixed pool of cooperating workers, each owning a disjoint,
// contiguous slice of the edge list.
//
// What & Why
//
//   - Borůvka repeatedly finds, for every component, the cheapest edge leaving
//     it, and merges components along all those edges at once. Each round at
//     least halves the number of components, so only O(log V) rounds are needed
//     and every round is an embarrassingly parallel scan over the edges.
//   - Workers never share memory. Each keeps its own union-find replica and
//     mutates it through exactly the same ordered sequence of merges, so the
//     replicas stay bit-identical round after round.
//
// One round
//
//  1. LocalCandidateScan (ScanCandidates): every worker scans its slice and
//     records, per component representative, the cheapest crossing edge.
//  2. CombineProtocol (CombineFlat / CombineTree): tables are reduced
//     component-wise into the globally cheapest table and replicated to every
//     worker, either through a flat all-reduce or a binary doubling tree.
//  3. MergeApplier (ApplyMerges): every worker walks the combined table in
//     ascending component order, re-checks each candidate against the current
//     replica and unions the accepted ones.
//
// The round controller stops when V-1 edges were accepted (Completed), when a
// round accepts nothing (ExhaustedProgress: the input is disconnected and the
// result is a spanning forest), or after V rounds (RoundCapReached).
//
// Tie-breaking
//
//   - TieBreakIncumbent (default) keeps whichever equal-weight edge was seen
//     first. Slices are contiguous and both combine strategies fold lower ranks
//     first, so "first" always means first in the global edge list: the chosen
//     edges match a serial scan exactly, for every worker count.
//   - TieBreakLowestID orders equal weights by canonical endpoints, which makes
//     the chosen edge set independent of input order as well.
//
// Either way the total weight is optimal; only which of several equally cheap
// edges is chosen can differ.
//
// Error Conditions
//
//	ErrInvalidGraph       - nil graph on the coordinator.
//	ErrInvalidWorkerCount - Workers <= 0.
//	ErrConfigMismatch     - ranks disagree on strategy, tie-break or partition policy.
//	ErrScatterMismatch    - a rank received a slice of the wrong length.
//	ErrTableSize          - a combined table arrived with the wrong length.
//	ErrReplicaDivergence  - replica digests or accepted counts differ between ranks.
//	ErrDisconnected       - WithRequireSpanning was set and the input is disconnected.
//
// Any error on any worker aborts the whole group.
package boruvka

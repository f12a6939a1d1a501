// SPDX-License-Identifier: MIT

// Package dsu implements the disjoint-set (union-find) replica every Borůvka
// worker keeps over the vertex ids [0, V).
//
// Strategy:
//
//   - Find walks to the root, then makes a second pass relinking every node on
//     the path directly to the root (full path compression, no recursion).
//   - Root performs the same walk without relinking. Workers use it while
//     scanning their private edge slices so that scanning never changes the
//     replica; only merges (applied in the same order everywhere) mutate it.
//   - Union links by rank and reports whether a merge happened.
//
// Because every mutation is driven by the same ordered sequence of Find/Union
// calls on every worker, replicas stay bit-identical. Digest fingerprints the
// parent and rank arrays with BLAKE3 so replicas can be compared cheaply across
// a network; Equal compares two in-process replicas directly.
//
// Complexity: Find/Union O(α(V)) amortized; Root O(log V) worst case thanks to
// union by rank. Memory: 2·V ints.
package dsu

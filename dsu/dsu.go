// SPDX-License-Identifier: MIT
package dsu

import (
	"encoding/binary"
	"errors"
	"fmt"

	"lukechampine.com/blake3"
)

// ErrNegativeSize is returned by New for n < 0.
var ErrNegativeSize = errors.New("dsu: negative size")

// DigestSize is the length in bytes of a replica Digest.
const DigestSize = 32

// Digest is a BLAKE3 fingerprint of a replica's parent and rank arrays.
type Digest [DigestSize]byte

// String renders the first eight bytes in hex, which is enough for log lines.
func (d Digest) String() string { return fmt.Sprintf("%x", d[:8]) }

// DisjointSet is a union-find structure over [0, n).
// It is not safe for concurrent mutation; each worker owns its own replica.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int // number of disjoint sets
}

// New returns n singleton sets.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrNegativeSize)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Root returns the representative of x without modifying the structure.
func (d *DisjointSet) Root(x int) int {
	for d.parent[x] != x {
		x = d.parent[x]
	}

	return x
}

// Find returns the representative of x and compresses the path from x to it.
func (d *DisjointSet) Find(x int) int {
	// Pass 1: locate the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Pass 2: relink every node on the path straight to the root.
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y by rank.
// It returns false when x and y were already in the same set.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y share a representative. It does not compress.
func (d *DisjointSet) Connected(x, y int) bool { return d.Root(x) == d.Root(y) }

// Clone returns an independent deep copy.
func (d *DisjointSet) Clone() *DisjointSet {
	c := &DisjointSet{
		parent: make([]int, len(d.parent)),
		rank:   make([]int, len(d.rank)),
		sets:   d.sets,
	}
	copy(c.parent, d.parent)
	copy(c.rank, d.rank)

	return c
}

// Equal reports whether two replicas are bit-identical (parent, rank, set count).
func (d *DisjointSet) Equal(o *DisjointSet) bool {
	if d.sets != o.sets || len(d.parent) != len(o.parent) {
		return false
	}
	for i := range d.parent {
		if d.parent[i] != o.parent[i] || d.rank[i] != o.rank[i] {
			return false
		}
	}

	return true
}

// Digest hashes the replica state. Equal replicas always have equal digests.
// Complexity: O(n).
func (d *DisjointSet) Digest() Digest {
	h := blake3.New(DigestSize, nil)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(d.parent)))
	h.Write(buf[:])
	for i := range d.parent {
		binary.LittleEndian.PutUint64(buf[:], uint64(d.parent[i]))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(d.rank[i]))
		h.Write(buf[:])
	}
	var out Digest
	h.Sum(out[:0])

	return out
}

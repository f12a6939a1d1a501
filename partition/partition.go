// SPDX-License-Identifier: MIT

// Package partition splits a global edge list into contiguous, disjoint,
// near-equal slices, one per worker rank.
//
// Two policies are supported:
//
//   - PolicyRemainderLast: every rank receives E/size edges and the last rank
//     additionally receives the E%size remainder (the scatter layout used by
//     the distributed engine by default).
//   - PolicyBalanced: the first E%size ranks receive one extra edge each, so
//     slice lengths differ by at most one.
//
// Either way slices are laid out in rank order, never overlap, and their union
// is the full edge list. Contiguity preserves input order, which keeps
// first-seen tie-breaking identical to a single serial scan.
package partition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parboruvka/core"
)

var (
	// ErrInvalidWorkerCount indicates size <= 0.
	ErrInvalidWorkerCount = errors.New("partition: worker count must be positive")

	// ErrInvalidEdgeCount indicates a negative edge count.
	ErrInvalidEdgeCount = errors.New("partition: negative edge count")

	// ErrUnknownPolicy indicates a Policy value outside the declared constants.
	ErrUnknownPolicy = errors.New("partition: unknown policy")
)

// Policy selects how the E%size remainder is distributed.
type Policy int

const (
	// PolicyRemainderLast hands the whole remainder to rank size-1.
	PolicyRemainderLast Policy = iota
	// PolicyBalanced hands one extra edge to each of the first E%size ranks.
	PolicyBalanced
)

// String returns the configuration name of p.
func (p Policy) String() string {
	switch p {
	case PolicyRemainderLast:
		return "remainder-last"
	case PolicyBalanced:
		return "balanced"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name back to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "remainder-last":
		return PolicyRemainderLast, nil
	case "balanced":
		return PolicyBalanced, nil
	default:
		return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
	}
}

// Slice is the contiguous range [Offset, Offset+Count) owned by Rank.
type Slice struct {
	Rank   int
	Offset int
	Count  int
}

// End returns Offset+Count.
func (s Slice) End() int { return s.Offset + s.Count }

// Plan computes per-rank counts and offsets (the send-counts/displacements of a
// scatter) for edgeCount edges over size workers.
// Complexity: O(size).
func Plan(edgeCount, size int, policy Policy) ([]Slice, error) {
	if size <= 0 {
		return nil, fmt.Errorf("Plan: size=%d: %w", size, ErrInvalidWorkerCount)
	}
	if edgeCount < 0 {
		return nil, fmt.Errorf("Plan: edges=%d: %w", edgeCount, ErrInvalidEdgeCount)
	}
	if policy != PolicyRemainderLast && policy != PolicyBalanced {
		return nil, fmt.Errorf("Plan: %s: %w", policy, ErrUnknownPolicy)
	}

	base := edgeCount / size
	remainder := edgeCount % size
	plan := make([]Slice, size)
	offset := 0
	for r := 0; r < size; r++ {
		count := base
		switch policy {
		case PolicyRemainderLast:
			if r == size-1 {
				count += remainder
			}
		case PolicyBalanced:
			if r < remainder {
				count++
			}
		}
		plan[r] = Slice{Rank: r, Offset: offset, Count: count}
		offset += count
	}

	return plan, nil
}

// Split copies edges into one slice per rank following Plan.
// Complexity: O(E + size).
func Split(edges []core.Edge, size int, policy Policy) ([][]core.Edge, error) {
	plan, err := Plan(len(edges), size, policy)
	if err != nil {
		return nil, err
	}
	parts := make([][]core.Edge, size)
	for _, s := range plan {
		part := make([]core.Edge, s.Count)
		copy(part, edges[s.Offset:s.End()])
		parts[s.Rank] = part
	}

	return parts, nil
}

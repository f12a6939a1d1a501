// SPDX-License-Identifier: MIT
package boruvka

import (
	"context"
	"fmt"

	"github.com/katalvlaran/parboruvka/comm"
)

// tagTree carries partial tables between tree partners.
const tagTree = comm.TagUser + 1

// Combiner replicates the component-wise cheapest table on every rank.
// local may be modified and must not be reused until the next Reset.
type Combiner func(ctx context.Context, c comm.Communicator, local CandidateTable, tb TieBreak) (CandidateTable, error)

// combinerFor maps a strategy to its implementation.
func combinerFor(s Strategy) (Combiner, error) {
	switch s {
	case StrategyFlat:
		return CombineFlat, nil
	case StrategyTree:
		return CombineTree, nil
	default:
		return nil, fmt.Errorf("%s: %w", s, ErrUnknownStrategy)
	}
}

// CombineFlat gathers every table at rank 0, folds them in ascending rank
// order and broadcasts the result.
func CombineFlat(ctx context.Context, c comm.Communicator, local CandidateTable, tb TieBreak) (CandidateTable, error) {
	out, err := comm.Allreduce(ctx, c, local, func(acc, in CandidateTable) CandidateTable {
		return acc.Combine(in, tb)
	})
	if err != nil {
		return nil, fmt.Errorf("CombineFlat: %w", err)
	}
	if len(out) != len(local) {
		return nil, fmt.Errorf("CombineFlat: got %d slots, want %d: %w", len(out), len(local), ErrTableSize)
	}

	return out, nil
}

// CombineTree reduces pairwise in log2(size) doubling steps: at step s rank r
// with r%(2s)==0 absorbs r+s, and rank r with r%(2s)==s hands its table to
// r-s and leaves the reduction. Rank 0 ends with the full fold and broadcasts.
func CombineTree(ctx context.Context, c comm.Communicator, local CandidateTable, tb TieBreak) (CandidateTable, error) {
	rank, size := c.Rank(), c.Size()
	acc := local
	for step := 1; step < size; step *= 2 {
		if rank%(2*step) != 0 {
			if err := comm.SendValue(ctx, c, rank-step, tagTree, acc); err != nil {
				return nil, fmt.Errorf("CombineTree step %d: %w", step, err)
			}
			break
		}
		peer := rank + step
		if peer >= size {
			continue
		}
		in, err := comm.RecvValue[CandidateTable](ctx, c, peer, tagTree)
		if err != nil {
			return nil, fmt.Errorf("CombineTree step %d: %w", step, err)
		}
		if len(in) != len(acc) {
			return nil, fmt.Errorf("CombineTree from %d: got %d slots, want %d: %w", peer, len(in), len(acc), ErrTableSize)
		}
		acc = acc.Combine(in, tb)
	}

	out, err := comm.Broadcast(ctx, c, 0, acc)
	if err != nil {
		return nil, fmt.Errorf("CombineTree: %w", err)
	}
	if len(out) != len(local) {
		return nil, fmt.Errorf("CombineTree: got %d slots, want %d: %w", len(out), len(local), ErrTableSize)
	}

	return out, nil
}

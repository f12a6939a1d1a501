// SPDX-License-Identifier: MIT
package comm

import (
	"context"
	"fmt"
)

// Broadcast sends v from root to every other rank and returns it everywhere.
// Non-root ranks ignore their own v and return the decoded copy of root's.
// Complexity: size-1 messages, all sent by root.
func Broadcast[T any](ctx context.Context, c Communicator, root int, v T) (T, error) {
	if err := checkRank(c, root); err != nil {
		return v, fmt.Errorf("Broadcast: %w", err)
	}
	if c.Rank() != root {
		return RecvValue[T](ctx, c, root, tagBroadcast)
	}

	// Encode once; every peer receives its own copy of the same bytes.
	payload, err := c.Codec().Marshal(v)
	if err != nil {
		return v, fmt.Errorf("Broadcast: %w", err)
	}
	for r := 0; r < c.Size(); r++ {
		if r == root {
			continue
		}
		if err := c.Send(ctx, r, tagBroadcast, payload); err != nil {
			return v, fmt.Errorf("Broadcast to %d: %w", r, err)
		}
	}

	return v, nil
}

// Reduce combines every rank's v at root with op, folding in ascending rank
// order: op(op(op(v0, v1), v2), ...). op may modify and return its first
// argument. Only root's return value is meaningful.
func Reduce[T any](ctx context.Context, c Communicator, root int, v T, op func(acc, in T) T) (T, error) {
	if err := checkRank(c, root); err != nil {
		return v, fmt.Errorf("Reduce: %w", err)
	}
	if c.Rank() != root {
		if err := SendValue(ctx, c, root, tagReduce, v); err != nil {
			return v, fmt.Errorf("Reduce: %w", err)
		}
		return v, nil
	}

	var acc T
	for r := 0; r < c.Size(); r++ {
		in := v
		if r != root {
			var err error
			if in, err = RecvValue[T](ctx, c, r, tagReduce); err != nil {
				return v, fmt.Errorf("Reduce from %d: %w", r, err)
			}
		}
		if r == 0 {
			acc = in
			continue
		}
		acc = op(acc, in)
	}

	return acc, nil
}

// Allreduce is Reduce at rank 0 followed by Broadcast, so every rank returns
// the identical combined value.
func Allreduce[T any](ctx context.Context, c Communicator, v T, op func(acc, in T) T) (T, error) {
	reduced, err := Reduce(ctx, c, 0, v, op)
	if err != nil {
		return v, err
	}

	return Broadcast(ctx, c, 0, reduced)
}

// Allgather collects every rank's v, indexed by rank, on every rank.
func Allgather[T any](ctx context.Context, c Communicator, v T) ([]T, error) {
	var all []T
	if c.Rank() == 0 {
		all = make([]T, c.Size())
		all[0] = v
		for r := 1; r < c.Size(); r++ {
			in, err := RecvValue[T](ctx, c, r, tagGather)
			if err != nil {
				return nil, fmt.Errorf("Allgather from %d: %w", r, err)
			}
			all[r] = in
		}
	} else if err := SendValue(ctx, c, 0, tagGather, v); err != nil {
		return nil, fmt.Errorf("Allgather: %w", err)
	}

	return Broadcast(ctx, c, 0, all)
}

// Barrier returns once every rank has entered it.
func Barrier(ctx context.Context, c Communicator) error {
	if c.Rank() == 0 {
		for r := 1; r < c.Size(); r++ {
			if _, err := c.Recv(ctx, r, tagBarrier); err != nil {
				return fmt.Errorf("Barrier from %d: %w", r, err)
			}
		}
	} else if err := c.Send(ctx, 0, tagBarrier, nil); err != nil {
		return fmt.Errorf("Barrier: %w", err)
	}
	_, err := Broadcast(ctx, c, 0, true)

	return err
}

// Sum is an Allreduce-ready integer addition operator.
func Sum(acc, in int) int { return acc + in }

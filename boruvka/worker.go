// SPDX-License-Identifier: MIT
package boruvka

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/parboruvka/comm"
	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/dsu"
	"github.com/katalvlaran/parboruvka/partition"
)

// tagScatter carries a rank's edge slice.
const tagScatter = comm.TagUser + 2

// header is broadcast by rank 0 before scattering.
type header struct {
	V, E           int
	Strategy       Strategy
	TieBreak       TieBreak
	Partition      partition.Policy
	VerifyReplicas bool
}

// scatterMsg wraps a rank's edge slice.
type scatterMsg struct {
	Edges []core.Edge
}

// replicaState is all-gathered when replica verification is on.
type replicaState struct {
	Accepted int
	Digest   dsu.Digest
}

// worker is one rank's view of a run.
type worker struct {
	c       comm.Communicator
	opts    Options
	combine Combiner

	state State
	v     int
	edges []core.Edge
	uf    *dsu.DisjointSet
	table CandidateTable

	accepted []core.Edge
	count    int
	weight   int64
	rounds   int
}

// RunWorker executes one rank of a run over c. g is read on rank 0 only and
// may be nil elsewhere. Every rank of c must call RunWorker with the same
// strategy, tie-break, partition and verification settings.
//
// Rank 0 returns the accepted edges; the other ranks return the same
// summary without them.
func RunWorker(ctx context.Context, c comm.Communicator, g *core.Graph, opts ...Option) (Result, error) {
	o := newOptions(opts...)
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	combine, err := combinerFor(o.Strategy)
	if err != nil {
		return Result{}, err
	}
	w := &worker{c: c, opts: o, combine: combine, state: StateScattering}

	if err := w.scatter(ctx, g); err != nil {
		return Result{}, fmt.Errorf("rank %d scatter: %w", c.Rank(), err)
	}
	reason, err := w.loop(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("rank %d round %d: %w", c.Rank(), w.rounds, err)
	}
	w.transition(StateDone)

	res := Result{
		TotalWeight: w.weight,
		Accepted:    w.count,
		Rounds:      w.rounds,
		Reason:      reason,
		Components:  w.uf.Sets(),
		Spanning:    w.uf.Sets() <= 1,
		Vertices:    w.v,
		Workers:     c.Size(),
		Strategy:    o.Strategy,
		Digest:      w.uf.Digest(),
	}
	if c.Rank() == 0 {
		res.Edges = w.accepted
	}

	return res, nil
}

func (w *worker) transition(to State) {
	glog.V(1).Infof("boruvka: rank %d %s -> %s", w.c.Rank(), w.state, to)
	w.state = to
}

// scatter agrees on the header and hands every rank its contiguous slice.
func (w *worker) scatter(ctx context.Context, g *core.Graph) error {
	rank, size := w.c.Rank(), w.c.Size()
	mine := header{
		Strategy:       w.opts.Strategy,
		TieBreak:       w.opts.TieBreak,
		Partition:      w.opts.Partition,
		VerifyReplicas: w.opts.VerifyReplicas,
	}
	if rank == 0 {
		if g == nil {
			return ErrInvalidGraph
		}
		mine.V, mine.E = g.VertexCount(), g.EdgeCount()
	}
	h, err := comm.Broadcast(ctx, w.c, 0, mine)
	if err != nil {
		return err
	}
	if h.Strategy != mine.Strategy || h.TieBreak != mine.TieBreak ||
		h.Partition != mine.Partition || h.VerifyReplicas != mine.VerifyReplicas {
		return fmt.Errorf("coordinator has %s/%s/%s verify=%t, rank %d has %s/%s/%s verify=%t: %w",
			h.Strategy, h.TieBreak, h.Partition, h.VerifyReplicas,
			rank, mine.Strategy, mine.TieBreak, mine.Partition, mine.VerifyReplicas, ErrConfigMismatch)
	}

	plan, err := partition.Plan(h.E, size, h.Partition)
	if err != nil {
		return err
	}
	if rank == 0 {
		for _, s := range plan[1:] {
			part, err := g.Slice(s.Offset, s.End())
			if err != nil {
				return err
			}
			if err := comm.SendValue(ctx, w.c, s.Rank, tagScatter, scatterMsg{Edges: part}); err != nil {
				return err
			}
		}
		if w.edges, err = g.Slice(plan[0].Offset, plan[0].End()); err != nil {
			return err
		}
	} else {
		msg, err := comm.RecvValue[scatterMsg](ctx, w.c, 0, tagScatter)
		if err != nil {
			return err
		}
		w.edges = msg.Edges
	}
	if want := plan[rank].Count; len(w.edges) != want {
		return fmt.Errorf("got %d edges, want %d: %w", len(w.edges), want, ErrScatterMismatch)
	}

	if w.uf, err = dsu.New(h.V); err != nil {
		return err
	}
	w.v = h.V
	w.table = NewCandidateTable(h.V)
	glog.V(1).Infof("boruvka: rank %d holds edges [%d,%d) of %d, V=%d",
		rank, plan[rank].Offset, plan[rank].End(), h.E, h.V)

	return nil
}

// loop runs rounds until one of the termination conditions holds.
func (w *worker) loop(ctx context.Context) (Termination, error) {
	w.transition(StateRoundActive)
	for {
		if w.count >= w.v-1 {
			return Completed, nil
		}
		if w.rounds >= w.v {
			return RoundCapReached, nil
		}
		w.rounds++

		w.table.Reset()
		ScanCandidates(w.edges, w.uf, w.table, w.opts.TieBreak)
		combined, err := w.combine(ctx, w.c, w.table, w.opts.TieBreak)
		if err != nil {
			return 0, err
		}
		merged := ApplyMerges(combined, w.uf)

		w.count += len(merged)
		w.weight += core.SumWeights(merged)
		if w.c.Rank() == 0 {
			w.accepted = append(w.accepted, merged...)
		}
		stats := RoundStats{
			Round:         w.rounds,
			Candidates:    combined.Count(),
			Accepted:      len(merged),
			TotalAccepted: w.count,
			Components:    w.uf.Sets(),
		}
		glog.V(2).Infof("boruvka: rank %d round %d: %d candidates, %d accepted, %d components",
			w.c.Rank(), stats.Round, stats.Candidates, stats.Accepted, stats.Components)

		if w.opts.VerifyReplicas {
			if err := w.verify(ctx); err != nil {
				return 0, err
			}
		}
		if w.c.Rank() == 0 && w.opts.OnRound != nil {
			w.opts.OnRound(stats)
		}
		if len(merged) == 0 {
			return ExhaustedProgress, nil
		}
	}
}

// verify all-gathers every replica's digest and accepted count.
func (w *worker) verify(ctx context.Context) error {
	mine := replicaState{Accepted: w.count, Digest: w.uf.Digest()}
	all, err := comm.Allgather(ctx, w.c, mine)
	if err != nil {
		return err
	}
	for r, s := range all {
		if s != all[0] {
			return fmt.Errorf("rank %d has %d accepted (%s), rank 0 has %d (%s): %w",
				r, s.Accepted, s.Digest, all[0].Accepted, all[0].Digest, ErrReplicaDivergence)
		}
	}

	return nil
}

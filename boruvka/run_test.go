// SPDX-License-Identifier: MIT
package boruvka_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parboruvka/boruvka"
	"github.com/katalvlaran/parboruvka/builder"
	"github.com/katalvlaran/parboruvka/comm"
	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/partition"
	"github.com/katalvlaran/parboruvka/serial"
)

var (
	strategies = []boruvka.Strategy{boruvka.StrategyFlat, boruvka.StrategyTree}
	tieBreaks  = []boruvka.TieBreak{boruvka.TieBreakIncumbent, boruvka.TieBreakLowestID}
	workers    = []int{1, 2, 4, 8}
)

func TestRun_Scenario(t *testing.T) {
	for _, n := range []int{1, 2, 4} {
		for _, s := range strategies {
			t.Run(fmt.Sprintf("%s/%d", s, n), func(t *testing.T) {
				res, err := boruvka.Run(context.Background(), scenario(),
					boruvka.WithWorkers(n), boruvka.WithStrategy(s))
				require.NoError(t, err)
				assert.EqualValues(t, 19, res.TotalWeight)
				assert.Len(t, res.Edges, 3)
				assert.Equal(t, 3, res.Accepted)
				assert.Equal(t, boruvka.Completed, res.Reason)
				assert.True(t, res.Spanning)
				assert.Equal(t, 1, res.Components)
				assert.Equal(t, 1, res.Rounds)
				assert.Equal(t, n, res.Workers)
				assert.Equal(t, 4, res.Vertices)
			})
		}
	}
}

func TestRun_TrivialGraphs(t *testing.T) {
	for _, v := range []int{0, 1} {
		res, err := boruvka.Run(context.Background(), core.MustGraph(v, nil), boruvka.WithWorkers(3))
		require.NoError(t, err)
		assert.EqualValues(t, 0, res.TotalWeight)
		assert.Empty(t, res.Edges)
		assert.Equal(t, 0, res.Rounds)
		assert.Equal(t, boruvka.Completed, res.Reason)
		assert.True(t, res.Spanning)
		assert.Equal(t, v, res.Components)
	}
}

func TestRun_Disconnected(t *testing.T) {
	g := core.MustGraph(4, []core.Edge{
		{Src: 0, Dest: 1, Weight: 1},
		{Src: 2, Dest: 3, Weight: 2},
	})
	for _, n := range workers {
		res, err := boruvka.Run(context.Background(), g, boruvka.WithWorkers(n))
		require.NoError(t, err)
		assert.Equal(t, boruvka.ExhaustedProgress, res.Reason)
		assert.False(t, res.Spanning)
		assert.Equal(t, 2, res.Components)
		assert.Less(t, res.Accepted, 3)
		assert.EqualValues(t, 3, res.TotalWeight)
		assert.Equal(t, 2, res.Rounds)
	}

	res, err := boruvka.Run(context.Background(), g, boruvka.WithWorkers(2), boruvka.WithRequireSpanning())
	assert.ErrorIs(t, err, boruvka.ErrDisconnected)
	assert.Equal(t, 2, res.Components, "forest is still returned")
}

// TestRun_MatchesOracles compares every configuration with the serial oracles:
// the weight always matches Kruskal, and the edges match serial Borůvka with
// the same tie-break rule exactly.
func TestRun_MatchesOracles(t *testing.T) {
	graphs := map[string]*core.Graph{
		"scenario": scenario(),
		"random-a": randomGraph(t, 1, 50, 150),
		"random-b": randomGraph(t, 2, 33, 33),
		"random-c": randomGraph(t, 3, 80, 400),
	}
	grid, err := builder.Build(builder.Grid(6, 7), builder.WithConstWeight(1))
	require.NoError(t, err)
	graphs["grid-uniform"] = grid
	forest, err := builder.DisjointUnion(randomGraph(t, 4, 12, 30), randomGraph(t, 5, 9, 9), core.MustGraph(1, nil))
	require.NoError(t, err)
	graphs["forest"] = forest

	for name, g := range graphs {
		kruskal, err := serial.Kruskal(g)
		require.NoError(t, err)
		for _, tb := range tieBreaks {
			var sopts []serial.Option
			if tb == boruvka.TieBreakLowestID {
				sopts = append(sopts, serial.WithLowestID())
			}
			oracle, err := serial.Boruvka(g, sopts...)
			require.NoError(t, err)

			for _, s := range strategies {
				for _, n := range workers {
					t.Run(fmt.Sprintf("%s/%s/%s/%d", name, tb, s, n), func(t *testing.T) {
						res, err := boruvka.Run(context.Background(), g,
							boruvka.WithWorkers(n), boruvka.WithStrategy(s), boruvka.WithTieBreak(tb),
							boruvka.WithReplicaCheck())
						require.NoError(t, err)
						assert.Equal(t, kruskal.Weight, res.TotalWeight)
						assert.Equal(t, kruskal.Components, res.Components)
						assert.Equal(t, oracle.Edges, res.Edges)
						assert.Equal(t, oracle.Rounds, res.Rounds)
						assert.LessOrEqual(t, res.Rounds, max(g.VertexCount(), 1))
						assert.Equal(t, core.SumWeights(res.Edges), res.TotalWeight)
					})
				}
			}
		}
	}
}

func TestRun_PartitionInvariance(t *testing.T) {
	g := randomGraph(t, 9, 40, 101)
	base, err := boruvka.Run(context.Background(), g)
	require.NoError(t, err)
	for _, p := range []partition.Policy{partition.PolicyRemainderLast, partition.PolicyBalanced} {
		for _, n := range []int{3, 6, 7} {
			res, err := boruvka.Run(context.Background(), g, boruvka.WithWorkers(n), boruvka.WithPartitionPolicy(p))
			require.NoError(t, err)
			assert.Equal(t, base.Edges, res.Edges, "%s/%d", p, n)
			assert.Equal(t, base.Digest, res.Digest, "%s/%d", p, n)
		}
	}
}

// TestRunWorker_Replicas runs every rank explicitly and inspects each result.
func TestRunWorker_Replicas(t *testing.T) {
	g := randomGraph(t, 21, 64, 256)
	const size = 5
	results := make([]boruvka.Result, size)
	errs := onRanks(t, size, func(ctx context.Context, c comm.Communicator) error {
		var in *core.Graph
		if c.Rank() == 0 {
			in = g
		}
		res, err := boruvka.RunWorker(ctx, c, in, boruvka.WithStrategy(boruvka.StrategyTree))
		results[c.Rank()] = res
		return err
	})
	for r := range errs {
		require.NoError(t, errs[r], "rank %d", r)
	}

	assert.Len(t, results[0].Edges, 63)
	for r := 1; r < size; r++ {
		assert.Nil(t, results[r].Edges, "rank %d", r)
		assert.Equal(t, results[0].Digest, results[r].Digest, "rank %d", r)
		assert.Equal(t, results[0].Components, results[r].Components)
		assert.Equal(t, results[0].TotalWeight, results[r].TotalWeight)
		assert.Equal(t, results[0].Rounds, results[r].Rounds)
	}
}

func TestRunWorker_ConfigMismatch(t *testing.T) {
	errs := onRanks(t, 2, func(ctx context.Context, c comm.Communicator) error {
		s := boruvka.StrategyFlat
		if c.Rank() == 1 {
			s = boruvka.StrategyTree
		}
		_, err := boruvka.RunWorker(ctx, c, scenario(), boruvka.WithStrategy(s))
		return err
	})
	assert.ErrorIs(t, errs[1], boruvka.ErrConfigMismatch)
	assert.ErrorIs(t, errs[0], boruvka.ErrConfigMismatch, "rank 0 is woken by the abort")
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := boruvka.Run(ctx, nil)
	assert.ErrorIs(t, err, boruvka.ErrInvalidGraph)

	_, err = boruvka.Run(ctx, scenario(), boruvka.WithWorkers(0))
	assert.ErrorIs(t, err, boruvka.ErrInvalidWorkerCount)

	_, err = boruvka.Run(ctx, scenario(), boruvka.WithStrategy(boruvka.Strategy(9)))
	assert.ErrorIs(t, err, boruvka.ErrUnknownStrategy)

	_, err = boruvka.Run(ctx, scenario(), boruvka.WithPartitionPolicy(partition.Policy(9)))
	assert.ErrorIs(t, err, partition.ErrUnknownPolicy)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = boruvka.Run(canceled, scenario(), boruvka.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_RoundHook(t *testing.T) {
	g := randomGraph(t, 5, 100, 300)
	var rounds []boruvka.RoundStats
	res, err := boruvka.Run(context.Background(), g, boruvka.WithWorkers(4),
		boruvka.WithRoundHook(func(s boruvka.RoundStats) { rounds = append(rounds, s) }))
	require.NoError(t, err)

	require.Len(t, rounds, res.Rounds)
	prev := g.VertexCount()
	for i, s := range rounds {
		assert.Equal(t, i+1, s.Round)
		assert.LessOrEqual(t, s.Components, prev/2, "every round at least halves the components")
		assert.Equal(t, g.VertexCount()-s.TotalAccepted, s.Components)
		prev = s.Components
	}
	assert.Equal(t, 99, rounds[len(rounds)-1].TotalAccepted)
}

func TestRun_ZstdCodec(t *testing.T) {
	z, err := comm.NewZstdCodec(nil)
	require.NoError(t, err)
	defer z.Close()

	g := randomGraph(t, 8, 200, 800)
	plain, err := boruvka.Run(context.Background(), g, boruvka.WithWorkers(4))
	require.NoError(t, err)
	packed, err := boruvka.Run(context.Background(), g, boruvka.WithWorkers(4), boruvka.WithCodec(z))
	require.NoError(t, err)

	assert.Equal(t, plain.Edges, packed.Edges)
	assert.Equal(t, plain.Messages, packed.Messages)
	assert.Positive(t, packed.Bytes)
}

func TestEnums(t *testing.T) {
	for _, s := range strategies {
		got, err := boruvka.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for _, tb := range tieBreaks {
		got, err := boruvka.ParseTieBreak(tb.String())
		require.NoError(t, err)
		assert.Equal(t, tb, got)
	}
	_, err := boruvka.ParseStrategy("ring")
	assert.ErrorIs(t, err, boruvka.ErrUnknownStrategy)
	_, err = boruvka.ParseTieBreak("random")
	assert.ErrorIs(t, err, boruvka.ErrUnknownTieBreak)

	assert.Equal(t, "completed", boruvka.Completed.String())
	assert.Equal(t, "exhausted-progress", boruvka.ExhaustedProgress.String())
	assert.Equal(t, "round-cap-reached", boruvka.RoundCapReached.String())
	assert.Equal(t, "round-active", boruvka.StateRoundActive.String())
	assert.Equal(t, "Strategy(7)", boruvka.Strategy(7).String())
}

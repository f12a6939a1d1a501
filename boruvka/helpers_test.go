// SPDX-License-Identifier: MIT
package boruvka_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parboruvka/builder"
	"github.com/katalvlaran/parboruvka/comm"
	"github.com/katalvlaran/parboruvka/core"
)

// scenario is the 4-vertex graph whose MST weighs 19.
func scenario() *core.Graph {
	return core.MustGraph(4, []core.Edge{
		{Src: 0, Dest: 1, Weight: 10},
		{Src: 0, Dest: 2, Weight: 6},
		{Src: 0, Dest: 3, Weight: 5},
		{Src: 1, Dest: 3, Weight: 15},
		{Src: 2, Dest: 3, Weight: 4},
	})
}

// randomGraph returns a connected graph with many equal weights.
func randomGraph(t testing.TB, seed int64, v, e int) *core.Graph {
	t.Helper()
	g, err := builder.Build(builder.RandomConnected(v, e), builder.WithSeed(seed), builder.WithMaxWeight(8))
	require.NoError(t, err)

	return g
}

// onRanks runs fn once per rank of a fresh network and aborts the network on
// the first failure. It returns the per-rank errors.
func onRanks(t *testing.T, size int, fn func(ctx context.Context, c comm.Communicator) error) []error {
	t.Helper()
	net, err := comm.NewNetwork(size)
	require.NoError(t, err)
	defer net.Close()

	errs := make([]error, size)
	var eg errgroup.Group
	for r, ep := range net.Endpoints() {
		eg.Go(func() error {
			if errs[r] = fn(context.Background(), ep); errs[r] != nil {
				net.Abort(errs[r])
			}
			return nil
		})
	}
	_ = eg.Wait()

	return errs
}

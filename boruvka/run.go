// SPDX-License-Identifier: MIT
package boruvka

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parboruvka/comm"
	"github.com/katalvlaran/parboruvka/core"
)

// Run computes the minimum spanning forest of g on Workers in-process ranks
// connected by a comm.Network, and returns rank 0's result.
//
// Any rank failing aborts the network, so every other rank unblocks and the
// first real failure is returned. When RequireSpanning is set and g is
// disconnected, the forest result is returned together with ErrDisconnected.
func Run(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	o := newOptions(opts...)
	if g == nil {
		return Result{}, ErrInvalidGraph
	}
	if o.Workers <= 0 {
		return Result{}, fmt.Errorf("Run: workers=%d: %w", o.Workers, ErrInvalidWorkerCount)
	}
	if err := o.validate(); err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}

	var netOpts []comm.NetworkOption
	if o.Codec != nil {
		netOpts = append(netOpts, comm.WithCodec(o.Codec))
	}
	net, err := comm.NewNetwork(o.Workers, netOpts...)
	if err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	defer net.Close()

	var (
		once  sync.Once
		cause error
	)
	results := make([]Result, o.Workers)
	eg, egctx := errgroup.WithContext(ctx)
	for r, ep := range net.Endpoints() {
		eg.Go(func() error {
			res, err := RunWorker(egctx, ep, g, WithOptions(o))
			if err != nil {
				// Ranks woken by the abort report ErrAborted; keep the origin.
				if !errors.Is(err, comm.ErrAborted) {
					once.Do(func() { cause = err })
				}
				net.Abort(err)
				return err
			}
			results[r] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		if cause != nil {
			return Result{}, cause
		}
		return Result{}, err
	}

	res := results[0]
	for r, other := range results[1:] {
		if other.Digest != res.Digest || other.Accepted != res.Accepted {
			return Result{}, fmt.Errorf("Run: rank %d digest %s, rank 0 digest %s: %w",
				r+1, other.Digest, res.Digest, ErrReplicaDivergence)
		}
	}
	st := net.Stats()
	res.Messages, res.Bytes = st.Messages, st.Bytes
	glog.V(1).Infof("boruvka: V=%d workers=%d %s: weight=%d edges=%d rounds=%d %s, %d messages",
		res.Vertices, res.Workers, res.Strategy, res.TotalWeight, res.Accepted, res.Rounds, res.Reason, res.Messages)

	if o.RequireSpanning && !res.Spanning {
		return res, fmt.Errorf("Run: %d components: %w", res.Components, ErrDisconnected)
	}

	return res, nil
}

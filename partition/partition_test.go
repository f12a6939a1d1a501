// SPDX-License-Identifier: MIT
package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/partition"
)

func edgesN(n int) []core.Edge {
	out := make([]core.Edge, n)
	for i := range out {
		out[i] = core.Edge{Src: i, Dest: i + 1, Weight: int64(i)}
	}

	return out
}

func TestPlan_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		edges  int
		size   int
		policy partition.Policy
		want   []int
	}{
		{"even", 8, 4, partition.PolicyRemainderLast, []int{2, 2, 2, 2}},
		{"remainder last", 10, 4, partition.PolicyRemainderLast, []int{2, 2, 2, 4}},
		{"balanced", 10, 4, partition.PolicyBalanced, []int{3, 3, 2, 2}},
		{"more workers than edges", 3, 8, partition.PolicyRemainderLast, []int{0, 0, 0, 0, 0, 0, 0, 3}},
		{"more workers balanced", 3, 8, partition.PolicyBalanced, []int{1, 1, 1, 0, 0, 0, 0, 0}},
		{"no edges", 0, 3, partition.PolicyRemainderLast, []int{0, 0, 0}},
		{"single worker", 5, 1, partition.PolicyBalanced, []int{5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := partition.Plan(tc.edges, tc.size, tc.policy)
			require.NoError(t, err)
			require.Len(t, plan, tc.size)

			offset := 0
			for r, s := range plan {
				assert.Equal(t, r, s.Rank)
				assert.Equal(t, offset, s.Offset, "slices must be contiguous")
				assert.Equal(t, tc.want[r], s.Count)
				offset = s.End()
			}
			assert.Equal(t, tc.edges, offset, "slices must cover every edge")
		})
	}
}

func TestPlan_Errors(t *testing.T) {
	_, err := partition.Plan(10, 0, partition.PolicyRemainderLast)
	assert.ErrorIs(t, err, partition.ErrInvalidWorkerCount)
	_, err = partition.Plan(10, -2, partition.PolicyRemainderLast)
	assert.ErrorIs(t, err, partition.ErrInvalidWorkerCount)
	_, err = partition.Plan(-1, 2, partition.PolicyRemainderLast)
	assert.ErrorIs(t, err, partition.ErrInvalidEdgeCount)
	_, err = partition.Plan(1, 1, partition.Policy(9))
	assert.ErrorIs(t, err, partition.ErrUnknownPolicy)
}

// TestSplit_DisjointCover reassembles the parts and expects the input back.
func TestSplit_DisjointCover(t *testing.T) {
	in := edgesN(23)
	for _, policy := range []partition.Policy{partition.PolicyRemainderLast, partition.PolicyBalanced} {
		for size := 1; size <= 9; size++ {
			parts, err := partition.Split(in, size, policy)
			require.NoError(t, err)
			require.Len(t, parts, size)

			var joined []core.Edge
			for _, p := range parts {
				joined = append(joined, p...)
			}
			assert.Equal(t, in, joined, "policy=%s size=%d", policy, size)
		}
	}

	parts, err := partition.Split(in, 2, partition.PolicyRemainderLast)
	require.NoError(t, err)
	parts[0][0].Weight = 999
	assert.Equal(t, int64(0), in[0].Weight, "Split must copy")
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []partition.Policy{partition.PolicyRemainderLast, partition.PolicyBalanced} {
		got, err := partition.ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := partition.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, partition.PolicyRemainderLast, got)

	_, err = partition.ParsePolicy("random")
	assert.ErrorIs(t, err, partition.ErrUnknownPolicy)
	assert.Equal(t, "Policy(7)", partition.Policy(7).String())
}

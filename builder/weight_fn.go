// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given the (possibly nil) RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
// Complexity: O(1).
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics if max < min. With a nil RNG it yields min.
// Complexity: O(1).
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

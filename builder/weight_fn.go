// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// constWeight returns a generator that ignores the RNG.
func constWeight(w int64) func(*rand.Rand) int64 {
	return func(*rand.Rand) int64 { return w }
}

// uniformWeight draws from [lo, hi]; with a nil RNG it returns lo.
func uniformWeight(lo, hi int64) func(*rand.Rand) int64 {
	return func(r *rand.Rand) int64 {
		if r == nil || hi == lo {
			return lo
		}
		return lo + r.Int63n(hi-lo+1)
	}
}

// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

const (
	methodRandomConnected = "RandomConnected"
	minRandomConnectedN   = 2

	// extraAttemptsFactor bounds rejection sampling for extra flights.
	extraAttemptsFactor = 8
)

// RandomConnected returns a Constructor for a connected random network:
//  1. a random spanning tree (vertex i attaches to a uniform j < i),
//  2. up to extra additional flights between random unconnected pairs.
//
// Extra flights are capped by the number of free pairs and by a bounded
// number of sampling attempts, so dense requests may add fewer.
// Requires n ≥ 2 and an RNG (WithSeed or WithRand).
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomConnectedN {
			return fmt.Errorf("%s: n=%d < %d: %w", methodRandomConnected, n, minRandomConnectedN, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		if extra < 0 {
			extra = 0
		}

		for i := 1; i < n; i++ {
			j := cfg.rng.Intn(i)
			if err := addFlight(g, cfg, methodRandomConnected, cfg.idFn(j), cfg.idFn(i)); err != nil {
				return err
			}
		}

		free := n*(n-1)/2 - (n - 1)
		if extra > free {
			extra = free
		}
		for added, attempts := 0, 0; added < extra && attempts < extra*extraAttemptsFactor; attempts++ {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			from, to := cfg.idFn(u), cfg.idFn(v)
			if g.HasEdge(from, to) {
				continue
			}
			if err := addFlight(g, cfg, methodRandomConnected, from, to); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

const (
	methodPath = "Path"
	minPathN   = 2
)

// Path returns a Constructor for the chain v0—v1—…—v(n-1).
// Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathN {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPathN, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			if err := addFlight(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

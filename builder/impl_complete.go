// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

const (
	methodComplete = "Complete"
	minCompleteN   = 2
)

// Complete returns a Constructor for K_n: one flight per unordered pair,
// inserted in lexicographic (i, j) order with i < j. Requires n ≥ 2.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d < %d: %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addFlight(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

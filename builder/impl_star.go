// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

const (
	methodStar = "Star"
	minStarN   = 2

	// CenterID is the hub city of every Star.
	CenterID = "Center"
)

// Star returns a Constructor for a hub CenterID connected to n-1 spokes
// named cfg.idFn(0..n-2). Requires n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarN {
			return fmt.Errorf("%s: n=%d < %d: %w", methodStar, n, minStarN, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			if err := addFlight(g, cfg, methodStar, CenterID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

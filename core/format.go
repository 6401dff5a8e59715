// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Human-readable adjacency listing. Not meant to be parsed back.

package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format writes every city in insertion order followed by its outgoing
// edges in edge-list order:
//
//	Chicago
//	  -> New York (10)
//	  -> Los Angeles (20)
//	New York
//	  -> Chicago (10)
//
// The output is deterministic for a given insertion sequence.
func (g *Graph) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range g.order {
		if _, err := fmt.Fprintln(bw, v.id); err != nil {
			return err
		}
		for _, e := range v.edges {
			if _, err := fmt.Fprintf(bw, "  -> %s (%d)\n", e.To, e.Weight); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// String returns the Format listing.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Format(&sb) // strings.Builder never fails

	return sb.String()
}

// Print writes the Format listing to stdout.
func (g *Graph) Print() {
	_ = g.Format(os.Stdout)
}

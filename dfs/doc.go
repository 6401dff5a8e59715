// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search (single-source and forest) on
// the flight network, and connected-component discovery built on it.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or the whole forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Components(g): connected components, used to tell callers which part
//     of the network a Prim tree or a BFS from one city actually covers
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the recursion stack, the visited bitset and Result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

// Package rsssp implements the restricted-SSSP recursion (RSSSP): given a
// single strongly connected component whose reduced edge weights are all
// >= -1, it produces a shortest-path-tree witness whose potentials make
// every remaining negative-weight edge's contribution negligible to the
// algorithm's outer scaling loop.
//
// The recursion alternates a light-vertex Monte Carlo estimate, a
// geometric-radius ball-carving pass that removes a constant fraction of
// vertices from consideration, and a further SCC decomposition of what
// remains, recursing into each resulting component with either a smaller
// vertex count or a halved kappa. Recursion depth here is O(log N + log
// kappa): each level either shrinks N by a constant factor or halves
// kappa, so Go's native call stack is used directly (depth is a small
// constant even at N in the hundreds of thousands or millions); the
// O(N)-depth traversals this recursion calls into — scc.Decompose's
// Kosaraju passes, spalgo.BallAndBoundary's Dijkstra — are the ones that
// use an explicit stack/heap instead of recursing per vertex.
//
// Grounded on original_source/src/rsssp.hpp.
package rsssp

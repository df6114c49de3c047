// Package bcf23 is a single-source shortest-path solver for directed
// weighted graphs that may carry negative edge weights, provided no
// negative cycle is reachable from the source.
//
// It implements the randomized near-linear algorithm of Bernstein, Chechik,
// and Fineman (BCF23): a recursive Restricted SSSP decomposition wrapped in
// an outer scaling loop that repeatedly shrinks the magnitude of negative
// weights by a constant factor via a vertex potential function.
//
// Subpackages, leaves first:
//
//	capper/  — operation-count budget replacing wall-clock deadlines
//	config/  — bundles a Capper with a deterministic RNG, threaded by
//	           reference through the whole call tree
//	wgraph/  — directed graph with vertex potentials and soft deletion
//	witness/ — tagged outcome of an SSSP attempt, plus validators
//	spalgo/  — Dijkstra, Bellman-Ford, and the lazy-Dijkstra hybrid at the
//	           heart of BCF23, plus ball-and-boundary carving
//	scc/     — Kosaraju strongly-connected-component decomposition
//	rsssp/   — the restricted-SSSP recursion
//	sssp/    — the scaling driver tying the above into solve_sssp
//
// A solver run is Las Vegas: it either returns a validated shortest-path
// tree or, on an exhausted operation budget or a detected inconsistency,
// an Unknown witness that the caller may retry with a larger budget or a
// different seed. This package deliberately omits CLI entry points, graph
// I/O, and visualization — those are external collaborators that construct
// a wgraph.Graph, call sssp.Solve, and consume the resulting witness.Witness.
//
//	go get github.com/negsssp/bcf23
package bcf23

// Package spalgo implements the shortest-path primitives BCF23 is built
// from: a non-negative-edge Dijkstra (plus its ball-and-boundary variant),
// Bellman-Ford, and the lazy-Dijkstra hybrid that alternates a Dijkstra
// phase with a Bellman-Ford sweep over negative edges to resolve up to a
// bounded number of negative-edge hops per run.
//
// Every primitive here operates on wgraph.Graph's reduced weights and
// respects its soft-deletion overlay. Every primitive except Bellman-Ford
// (which takes no capper) also consults a capper.Capper and returns
// whatever partial result it has computed so far once the budget is
// exhausted, rather than blocking or panicking.
//
// The lazy-Dijkstra family additionally records, for every relaxation, the
// edge that performed it, so that callers (rsssp, mainly) can reconstruct a
// witness.Witness's PureDist without a second Bellman-Ford pass.
package spalgo

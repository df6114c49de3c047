// Package wgraph is a directed graph with integer vertex potentials and a
// transient soft-deletion facility, the data model BCF23's shortest-path
// primitives operate on exclusively.
//
// Vertices are addressed by dense indices in [0, N); edges are addressed by
// stable indices in [0, M) into a flat edge list, with forward (adj) and
// reverse (radj) adjacency keyed by vertex. Every edge's effective weight is
// "reduced" by the endpoint potentials (Graph.Weight), so that shifting phi
// never requires touching an edge record: the reduced weight is recomputed
// on demand from w(e) + phi[s] - phi[e].
//
// Soft deletion (EnableDeletions/DeleteVertex/DeleteEdge/DisableDeletions)
// lets RSSSP carve a residual subgraph out of g without copying adjacency —
// every shortest-path primitive in spalgo checks DeletedVertex/DeletedEdge
// before touching a vertex or edge. Deletions are meant to be transient to a
// single RSSSP call; DisableDeletions clears both sets.
package wgraph

package sssp

import (
	"github.com/negsssp/bcf23/config"
	"github.com/negsssp/bcf23/spalgo"
	"github.com/negsssp/bcf23/wgraph"
	"github.com/negsssp/bcf23/witness"
)

// Solve computes single-source shortest paths from source over g, which
// must have no negative cycle (a precondition g itself cannot check; a
// graph violating it makes every witness.Unknown returned here
// indistinguishable from ordinary budget exhaustion).
// Solve never modifies g; all scaling happens on an internal clone.
//
// Grounded on original_source/src/sssp.hpp's sssp(); the x4N initial rescale
// mirrors that function exactly, while the scaling loop and final Dijkstra
// complete what that source left truncated — see DESIGN.md for why.
func Solve(g *wgraph.Graph, source int, cfg *config.Config) witness.Witness {
	n := g.N()
	h := g.Clone()

	mult := wgraph.Weight(4 * n)
	for i := range h.Phi {
		h.Phi[i] *= mult
	}
	for i := range h.Edges {
		h.Edges[i].W *= mult
	}

	// oneStepScaling is itself a no-op once min_weight >= -3 (see its doc
	// comment): that residual of at most 3 is deliberately left for the
	// final lazy-Dijkstra's negative-edge sweep to clean up, rather than
	// chased with more scaling rounds that would never shrink it further.
	for h.MinWeight() < -3 {
		if !oneStepScaling(h, cfg) {
			return witness.UnknownWitness()
		}
	}

	// A kappa of h.N() gives the negative-edge sweep a Bellman-Ford-strength
	// convergence guarantee, which comfortably covers the small residual
	// magnitude left behind above, and also gives us parent edges for
	// PureDist reconstruction.
	dist, parentEdge := spalgo.LazyDijkstraSingleSource(h, source, h.N(), cfg.Capper)
	if cfg.Capper.Fail() {
		return witness.UnknownWitness()
	}

	w := witness.NewShortestPathTree(dist, parentEdge)
	if !w.Validate(h) {
		return witness.UnknownWitness()
	}

	// h's edge weights were scaled by mult (and its potentials shifted
	// during scaling), so dist/w.PureDist as computed against h are
	// in scaled units. The parent-edge tree itself, though, picks out the
	// same shortest paths in g: a uniform positive weight scale and any
	// potential shift are both path-independent, so the minimizing tree
	// never changes between g and h, only the path lengths' units. Re-sum
	// that same tree against g's original weights to report distances in
	// the caller's units.
	ok, pureDist := witness.ReconstructPureDist(g, dist, parentEdge)
	if !ok {
		return witness.UnknownWitness()
	}
	w.PureDist = pureDist
	return w
}

package sssp

import (
	"github.com/negsssp/bcf23/config"
	"github.com/negsssp/bcf23/rsssp"
	"github.com/negsssp/bcf23/wgraph"
	"github.com/negsssp/bcf23/witness"
)

// divCeil is ceiling division for b > 0, correct for either sign of a.
//
// Grounded on original_source/src/sssp.hpp's __div_ceil.
func divCeil(a, b wgraph.Weight) wgraph.Weight {
	if a >= 0 {
		return (a + b - 1) / b
	}
	return -((-a) / b)
}

// oneStepScaling shrinks the magnitude of g's most negative reduced weight
// to about two thirds (the new minimum is at least -2W+1, with W as computed
// below), folding the result into g.Phi, and reports
// whether it succeeded (false means the capper's budget ran out, or the
// recursive solve below it failed to validate — either way g is left
// unmodified and the caller should treat the whole scaling loop as failed).
//
// Grounded on original_source/src/sssp.hpp's one_step_scaling.
func oneStepScaling(g *wgraph.Graph, cfg *config.Config) bool {
	minWeight := g.MinWeight()
	if minWeight >= -3 {
		return true
	}

	w := (-minWeight)/3 + 1

	h := g.Clone()
	for i := range h.Edges {
		h.Edges[i].W = divCeil(g.Weight(i), w) + 1
	}
	for i := range h.Phi {
		h.Phi[i] = 0
	}
	// rsssp.Solve's guard only asks that the caller has already scoped the
	// graph as the recursion's current universe; it does not itself verify
	// strong connectivity (and its internal SCC decomposition will split h
	// into its true components regardless). The scaling driver hands rsssp
	// the whole graph as that scope, matching how original_source's own
	// rsssp_test.cc calls solve_rsssp directly on whatever graph it built.
	h.IsSCC = true

	wit := rsssp.Solve(h, cfg)
	if wit.State != witness.ShortestPathTree {
		return false
	}

	// rsssp.Solve leaves h.Phi shifted and wit.Dist relative to that shift,
	// so wit.Dist[i] + h.Phi[i] is a feasible potential for h's weights.
	for i := range g.Phi {
		g.Phi[i] += w * (wit.Dist[i] + h.Phi[i])
	}
	return true
}

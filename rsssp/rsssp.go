package rsssp

import (
	"math"

	"github.com/negsssp/bcf23/config"
	"github.com/negsssp/bcf23/scc"
	"github.com/negsssp/bcf23/spalgo"
	"github.com/negsssp/bcf23/wgraph"
	"github.com/negsssp/bcf23/witness"
)

// Solve runs the restricted-SSSP recursion on g, which must be a single
// strongly connected component (g.IsSCC) with every reduced edge weight
// >= -1 (g.IsRestricted()). It returns witness.Unknown if g is not marked
// IsSCC, if the capper's budget is exhausted at any point, or if a
// randomized carving round produces a sub-result that fails validation. It
// panics if g is not restricted.
//
// Grounded on original_source/src/rsssp.hpp's solve_rsssp.
func Solve(g *wgraph.Graph, cfg *config.Config) witness.Witness {
	return solve(g, g.N(), cfg)
}

func solve(g *wgraph.Graph, kappa int, cfg *config.Config) witness.Witness {
	if !g.IsSCC {
		return witness.UnknownWitness()
	}
	if !g.IsRestricted() {
		panic("rsssp: solve called on a graph with a reduced edge weight below -1")
	}

	if !cfg.Capper.Incr(1) {
		return witness.UnknownWitness()
	}

	if g.N() <= 1 || kappa <= LowKappaLimit {
		return baseCase(g, kappa, cfg)
	}

	return recurse(g, kappa, cfg)
}

// baseCase solves directly via an all-source lazy-Dijkstra bounded by
// kappa rounds, used whenever the graph is tiny or kappa is too small to
// amortize a carving round.
func baseCase(g *wgraph.Graph, kappa int, cfg *config.Config) witness.Witness {
	dist, parentEdge := spalgo.LazyDijkstraAllSource(g, kappa, cfg.Capper)
	if cfg.Capper.Fail() {
		return witness.UnknownWitness()
	}

	w := witness.NewShortestPathTree(dist, parentEdge)
	if !w.Validate(g) {
		return witness.UnknownWitness()
	}
	return w
}

// recurse carves light vertices' balls out of g and its transpose, SCC-
// decomposes what remains, solves each resulting component independently,
// folds the per-component witnesses into g's potential, and reconciles
// with one final unrestricted all-source lazy-Dijkstra pass.
func recurse(g *wgraph.Graph, kappa int, cfg *config.Config) witness.Witness {
	inLight := getInLightVertices(g, kappa, cfg)
	if cfg.Capper.Fail() {
		return witness.UnknownWitness()
	}

	gt := g.Transpose()
	outLight := getInLightVertices(gt, kappa, cfg)
	if cfg.Capper.Fail() {
		return witness.UnknownWitness()
	}

	p := RadiusTemperature * math.Log(float64(g.N())) / float64(kappa)

	g.EnableDeletions()
	gt.EnableDeletions()

	for _, v := range outLight {
		if g.DeletedVertex(v) {
			continue
		}
		r := sampleGeometric(cfg.Rng, p)
		ball, boundary := spalgo.BallAndBoundary(g, v, r, cfg.Capper)
		carve(g, gt, ball, boundary)
	}

	for _, v := range inLight {
		if g.DeletedVertex(v) {
			continue
		}
		r := sampleGeometric(cfg.Rng, p)
		ball, boundary := spalgo.BallAndBoundary(gt, v, r, cfg.Capper)
		carve(g, gt, ball, boundary)
	}

	// Carved vertices rejoin the graph for the SCC decomposition, but the
	// boundary edges deleted during carving stay deleted, so the
	// decomposition splits the graph along the carved balls.
	g.ClearVertexDeletions()
	gt.ClearVertexDeletions()

	decomp := scc.Decompose(g)

	witnessBySCC := make([]witness.Witness, decomp.NumSCC())
	lightThreshold := int(LightRatio * float64(g.N()))
	for i, sub := range decomp.SCCSubgraphs {
		var w witness.Witness
		if sub.N() <= lightThreshold {
			w = solve(sub, kappa, cfg)
		} else {
			w = solve(sub, kappa/2, cfg)
		}
		if cfg.Capper.Fail() || !w.Validate(sub) {
			return witness.UnknownWitness()
		}
		witnessBySCC[i] = w
	}

	g.DisableDeletions()

	for sccIdx, sub := range decomp.SCCSubgraphs {
		w := witnessBySCC[sccIdx]
		for vSCC := 0; vSCC < sub.N(); vSCC++ {
			vG := decomp.VertexUp[sccIdx][vSCC]
			g.Phi[vG] += w.Dist[vSCC]
		}
	}
	for vG := 0; vG < g.N(); vG++ {
		g.Phi[vG] -= wgraph.Weight(decomp.VertexDown[vG].SCC)
	}

	// Reconcile: one all-source lazy-Dijkstra pass with enough rounds to
	// converge on any graph (Bellman-Ford's N-1 bound), mirroring the
	// source's unlimited-kappa final pass.
	dist, parentEdge := spalgo.LazyDijkstraAllSource(g, g.N(), cfg.Capper)

	w := witness.NewShortestPathTree(dist, parentEdge)
	if cfg.Capper.Fail() || !w.Validate(g) {
		return witness.UnknownWitness()
	}
	return w
}

func carve(g, gt *wgraph.Graph, ball []int, boundary []int) {
	for _, v := range ball {
		g.DeleteVertex(v)
		gt.DeleteVertex(v)
	}
	for _, e := range boundary {
		g.DeleteEdge(e)
		gt.DeleteEdge(e)
	}
}

package spalgo

import (
	"container/heap"

	"github.com/negsssp/bcf23/capper"
	"github.com/negsssp/bcf23/wgraph"
)

// lazyDijkstraCore alternates a non-negative Dijkstra phase with a sweep
// over negative-reduced-weight edges, for up to kappa outer iterations. It
// assumes g.IsRestricted() (min reduced weight >= -1): each negative sweep
// can only ever improve a vertex's distance by at most one hop across a
// weight -1 edge, so kappa rounds suffice whenever no shortest path uses
// more than kappa such edges. dist and parentEdge are mutated in place and
// must already hold the caller's seed values (for example 0 at sources,
// +Inf elsewhere).
//
// Grounded on original_source/src/spalgo.hpp's lazy_dijkstra namespace. Per
// the spec's description of this primitive, the capper is incremented once
// per outer iteration (the original snapshot's loop only calls
// capper->fail(), but the documented contract is an increment per round).
func lazyDijkstraCore(g *wgraph.Graph, dist []wgraph.Weight, parentEdge []int, kappa int, cap capper.Capper) {
	negEdges := make([]int, 0)
	for idx := range g.Edges {
		if g.Weight(idx) < 0 {
			negEdges = append(negEdges, idx)
		}
	}

	for iter := 0; iter <= kappa; iter++ {
		if !cap.Incr(1) {
			return
		}

		var q pq
		for v, d := range dist {
			if d != wgraph.Inf && !g.DeletedVertex(v) {
				q = append(q, pqItem{dist: d, vertex: v})
			}
		}
		heap.Init(&q)
		relaxNonNegative(g, &q, dist, parentEdge)

		if iter == kappa {
			break
		}

		changed := false
		for _, edgeIdx := range negEdges {
			if g.DeletedEdge(edgeIdx) {
				continue
			}
			e := g.Edges[edgeIdx]
			if g.DeletedVertex(e.S) || g.DeletedVertex(e.E) {
				continue
			}
			if dist[e.S] == wgraph.Inf {
				continue
			}
			if cand := dist[e.S] + g.Weight(edgeIdx); cand < dist[e.E] {
				dist[e.E] = cand
				if parentEdge != nil {
					parentEdge[e.E] = edgeIdx
				}
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

// LazyDijkstraMultiSource seeds dist 0 at every vertex in src and runs
// lazyDijkstraCore for up to kappa outer iterations, returning the distance
// vector and a parent-edge tree (-1 where unreached or a source).
func LazyDijkstraMultiSource(g *wgraph.Graph, src []int, kappa int, cap capper.Capper) (dist []wgraph.Weight, parentEdge []int) {
	dist = g.InitialDist()
	parentEdge = make([]int, g.N())
	for i := range parentEdge {
		parentEdge[i] = -1
	}
	for _, s := range src {
		if !g.DeletedVertex(s) {
			dist[s] = 0
		}
	}

	lazyDijkstraCore(g, dist, parentEdge, kappa, cap)
	return dist, parentEdge
}

// LazyDijkstraSingleSource is LazyDijkstraMultiSource with one source.
func LazyDijkstraSingleSource(g *wgraph.Graph, src int, kappa int, cap capper.Capper) (dist []wgraph.Weight, parentEdge []int) {
	return LazyDijkstraMultiSource(g, []int{src}, kappa, cap)
}

// LazyDijkstraAllSource treats every non-deleted vertex as a source.
func LazyDijkstraAllSource(g *wgraph.Graph, kappa int, cap capper.Capper) (dist []wgraph.Weight, parentEdge []int) {
	src := make([]int, 0, g.N())
	for v := 0; v < g.N(); v++ {
		if !g.DeletedVertex(v) {
			src = append(src, v)
		}
	}
	return LazyDijkstraMultiSource(g, src, kappa, cap)
}

// LazyDijkstraArtificialSource adds a virtual vertex connected to every
// non-deleted vertex v by a zero-weight edge, and solves from it. Since an
// edge's reduced weight is w + phi[s] - phi[e] and the virtual vertex has no
// potential of its own (phi = 0), a zero-weight virtual edge into v has
// reduced weight -phi[v]; rather than materialize the vertex, this seeds
// dist[v] = -phi[v] directly and runs the same Dijkstra/negative-sweep
// loop. Used to reconcile a graph whose potentials are a valid but possibly
// loose lower bound into exact distances.
func LazyDijkstraArtificialSource(g *wgraph.Graph, kappa int, cap capper.Capper) (dist []wgraph.Weight, parentEdge []int) {
	dist = g.InitialDist()
	parentEdge = make([]int, g.N())
	for v := 0; v < g.N(); v++ {
		parentEdge[v] = -1
		if !g.DeletedVertex(v) {
			dist[v] = -g.Phi[v]
		}
	}

	lazyDijkstraCore(g, dist, parentEdge, kappa, cap)
	return dist, parentEdge
}

// LazyDijkstraPredeterminedInitialWit continues lazy-Dijkstra from a caller
// supplied partial witness (dist/parentEdge already seeded, e.g. by a prior
// recursive call) rather than from a plain source set. The inputs are
// copied; the originals are left untouched.
func LazyDijkstraPredeterminedInitialWit(g *wgraph.Graph, initialDist []wgraph.Weight, initialParentEdge []int, kappa int, cap capper.Capper) (dist []wgraph.Weight, parentEdge []int) {
	dist = make([]wgraph.Weight, len(initialDist))
	copy(dist, initialDist)
	parentEdge = make([]int, len(initialParentEdge))
	copy(parentEdge, initialParentEdge)

	lazyDijkstraCore(g, dist, parentEdge, kappa, cap)
	return dist, parentEdge
}

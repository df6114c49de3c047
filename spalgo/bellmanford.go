package spalgo

import "github.com/negsssp/bcf23/wgraph"

// BellmanFordMultiSource relaxes every non-deleted edge N-1 times from an
// initial distance of 0 at every vertex in src, +Inf elsewhere. It ignores
// the capper: Bellman-Ford is used as ground truth for tests and to seed the
// artificial-source lazy-Dijkstra, not as a primitive subject to the
// recursion's operation budget.
//
// Grounded on original_source/src/spalgo.hpp's bellman_ford::multi_source.
func BellmanFordMultiSource(g *wgraph.Graph, src []int) []wgraph.Weight {
	dist := g.InitialDist()
	for _, s := range src {
		dist[s] = 0
	}

	n := g.N()
	for i := 0; i < n-1; i++ {
		for idx, e := range g.Edges {
			if g.DeletedEdge(idx) || g.DeletedVertex(e.S) || g.DeletedVertex(e.E) {
				continue
			}
			if dist[e.S] == wgraph.Inf {
				continue
			}
			if cand := dist[e.S] + g.Weight(idx); cand < dist[e.E] {
				dist[e.E] = cand
			}
		}
	}
	return dist
}

// BellmanFordSingleSource is BellmanFordMultiSource with one source.
func BellmanFordSingleSource(g *wgraph.Graph, src int) []wgraph.Weight {
	return BellmanFordMultiSource(g, []int{src})
}

// BellmanFordAllSource treats every vertex as a source, yielding a
// non-positive distance vector.
func BellmanFordAllSource(g *wgraph.Graph) []wgraph.Weight {
	src := make([]int, g.N())
	for i := range src {
		src[i] = i
	}
	return BellmanFordMultiSource(g, src)
}

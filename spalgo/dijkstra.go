package spalgo

import (
	"container/heap"

	"github.com/negsssp/bcf23/capper"
	"github.com/negsssp/bcf23/wgraph"
)

// MultiSource runs Dijkstra from every vertex in src simultaneously,
// returning the distance vector. If ignoreNegativeEdges is false, the caller
// is asserting that g has no negative reduced edge weight; violating that
// assertion is a programmer error and panics, mirroring
// original_source/src/spalgo.hpp's naive_dijkstra::multi_source assert. If
// ignoreNegativeEdges is true, negative reduced edges are simply treated as
// invisible rather than checked.
func MultiSource(g *wgraph.Graph, src []int, ignoreNegativeEdges bool, cap capper.Capper) []wgraph.Weight {
	if !ignoreNegativeEdges && g.MinWeight() < 0 {
		panic("spalgo: MultiSource called with ignoreNegativeEdges=false on a graph with negative reduced weight")
	}

	dist := g.InitialDist()
	var q pq
	for _, s := range src {
		if g.DeletedVertex(s) {
			continue
		}
		dist[s] = 0
		q = append(q, pqItem{dist: 0, vertex: s})
	}
	heap.Init(&q)

	if !cap.Incr(1) {
		return dist
	}
	relaxNonNegative(g, &q, dist, nil)

	return dist
}

// SingleSource is MultiSource with a single source vertex.
func SingleSource(g *wgraph.Graph, src int, ignoreNegativeEdges bool, cap capper.Capper) []wgraph.Weight {
	return MultiSource(g, []int{src}, ignoreNegativeEdges, cap)
}

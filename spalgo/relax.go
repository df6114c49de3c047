package spalgo

import (
	"container/heap"

	"github.com/negsssp/bcf23/wgraph"
)

// relaxNonNegative drains q, relaxing only edges with non-negative reduced
// weight into non-deleted neighbors, skipping deleted edges and stale heap
// entries. parentEdge may be nil, in which case no parent tracking happens.
//
// Grounded on original_source/src/spalgo.hpp's
// internal::relax_dijkstra_with_priority_queue.
func relaxNonNegative(g *wgraph.Graph, q *pq, dist []wgraph.Weight, parentEdge []int) {
	for q.Len() > 0 {
		top := heap.Pop(q).(pqItem)
		if top.dist != dist[top.vertex] {
			continue // stale entry
		}

		for _, edgeIdx := range g.Adj[top.vertex] {
			if g.DeletedEdge(edgeIdx) {
				continue
			}
			w := g.Weight(edgeIdx)
			if w < 0 {
				continue // negative reduced edges are invisible to this phase
			}

			next := g.Edges[edgeIdx].E
			if g.DeletedVertex(next) {
				continue
			}

			cand := top.dist + w
			if cand >= dist[next] {
				continue
			}

			dist[next] = cand
			if parentEdge != nil {
				parentEdge[next] = edgeIdx
			}
			heap.Push(q, pqItem{dist: cand, vertex: next})
		}
	}
}

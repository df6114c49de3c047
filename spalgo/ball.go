package spalgo

import (
	"container/heap"

	"github.com/negsssp/bcf23/capper"
	"github.com/negsssp/bcf23/wgraph"
)

// BallAndBoundary runs a radius-capped, non-negative-edges-only Dijkstra
// from src, stopping expansion at any vertex whose distance exceeds r. It
// returns the ball (vertices with dist <= r) and the boundary (edges from
// inside the ball to outside it, by index; not deduplicated).
//
// Grounded on original_source/src/spalgo.hpp's
// naive_dijkstra::get_ball_and_boundary.
func BallAndBoundary(g *wgraph.Graph, src int, r wgraph.Weight, cap capper.Capper) (ball []int, boundary []int) {
	if !cap.Incr(1) {
		return nil, nil
	}

	dist := g.InitialDist()
	dist[src] = 0

	var q pq
	q = append(q, pqItem{dist: 0, vertex: src})
	heap.Init(&q)

	var boundaryCandidates []int

	for q.Len() > 0 {
		top := heap.Pop(&q).(pqItem)
		if top.dist != dist[top.vertex] {
			continue // stale entry
		}
		if top.dist > r {
			continue // outside the ball, do not expand further
		}
		ball = append(ball, top.vertex)

		for _, edgeIdx := range g.Adj[top.vertex] {
			if g.DeletedEdge(edgeIdx) {
				continue
			}
			w := g.Weight(edgeIdx)
			if w < 0 {
				continue
			}
			next := g.Edges[edgeIdx].E
			if g.DeletedVertex(next) {
				continue
			}

			if dist[next] > top.dist+w {
				dist[next] = top.dist + w
				heap.Push(&q, pqItem{dist: dist[next], vertex: next})
			}
			if dist[next] > r {
				boundaryCandidates = append(boundaryCandidates, edgeIdx)
			}
		}
	}

	for _, edgeIdx := range boundaryCandidates {
		e := g.Edges[edgeIdx]
		if dist[e.S] <= r && dist[e.E] > r {
			boundary = append(boundary, edgeIdx)
		}
	}

	return ball, boundary
}

package spalgo

import "github.com/negsssp/bcf23/wgraph"

// pqItem is one entry of the lazy-decrease-key priority queue: a candidate
// distance to a vertex. Stale entries (whose dist no longer matches the
// current best known distance) are left in place and skipped on pop rather
// than removed, mirroring the teacher's dijkstra package (dijkstra/dijkstra.go's
// nodePQ/runner) and original_source/src/spalgo.hpp's priority_queue usage.
type pqItem struct {
	dist   wgraph.Weight
	vertex int
}

// pq is a min-heap of pqItem ordered by dist ascending.
type pq []pqItem

func (q pq) Len() int            { return len(q) }
func (q pq) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pq) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x interface{}) { *q = append(*q, x.(pqItem)) }
func (q *pq) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

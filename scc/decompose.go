package scc

import "github.com/negsssp/bcf23/wgraph"

// frame is one level of an explicit DFS stack: the vertex being visited and
// how far through its adjacency list the walk has progressed.
type frame struct {
	v int
	i int
}

// Decompose runs Kosaraju's algorithm over g, honoring soft-deleted
// vertices and edges (a deleted vertex is skipped as both a DFS root and a
// neighbor; a deleted edge never contributes to either the forward or
// backward pass, nor to the final edge split).
//
// Grounded on original_source/src/scc.hpp's SCCDecomposition constructor;
// both DFS passes are rewritten as explicit-stack loops in place of the
// source's native recursion, avoiding a stack-depth blowup on a long path
// graph, and the temporary reverse-adjacency-by-vertex the source builds
// during its forward pass is dropped in favor of g.Radj, which
// wgraph.Graph already maintains.
func Decompose(g *wgraph.Graph) *Decomposition {
	n := g.N()

	visited := make([]bool, n)
	finishOrder := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if visited[start] || g.DeletedVertex(start) {
			continue
		}
		visited[start] = true
		stack := []frame{{v: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.i >= len(g.Adj[top.v]) {
				finishOrder = append(finishOrder, top.v)
				stack = stack[:len(stack)-1]
				continue
			}

			edgeIdx := g.Adj[top.v][top.i]
			top.i++
			if g.DeletedEdge(edgeIdx) {
				continue
			}
			next := g.Edges[edgeIdx].E
			if g.DeletedVertex(next) || visited[next] {
				continue
			}
			visited[next] = true
			stack = append(stack, frame{v: next})
		}
	}

	vertexDown := make([]Index, n)
	for i := range vertexDown {
		vertexDown[i] = Invalid
	}
	var sccSubgraphs []*wgraph.Graph
	var vertexUp [][]int

	for i := len(finishOrder) - 1; i >= 0; i-- {
		root := finishOrder[i]
		if vertexDown[root] != Invalid {
			continue
		}

		sccIdx := len(sccSubgraphs)
		sccSubgraphs = append(sccSubgraphs, wgraph.NewSCC(0))
		vertexUp = append(vertexUp, nil)

		stack := []int{root}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if vertexDown[v] != Invalid {
				continue
			}

			sub := sccSubgraphs[sccIdx]
			localIdx := sub.AddVertex(0)
			vertexUp[sccIdx] = append(vertexUp[sccIdx], v)
			vertexDown[v] = Index{SCC: sccIdx, Vertex: localIdx}

			for _, edgeIdx := range g.Radj[v] {
				if g.DeletedEdge(edgeIdx) {
					continue
				}
				u := g.Edges[edgeIdx].S
				if g.DeletedVertex(u) || vertexDown[u] != Invalid {
					continue
				}
				stack = append(stack, u)
			}
		}
	}

	interSCC := wgraph.New(n)
	edgeDown := make([]int, g.M())
	for idx, e := range g.Edges {
		if g.DeletedEdge(idx) || g.DeletedVertex(e.S) || g.DeletedVertex(e.E) {
			edgeDown[idx] = -1
			continue
		}

		sDown, eDown := vertexDown[e.S], vertexDown[e.E]
		if sDown.SCC == eDown.SCC {
			sub := sccSubgraphs[sDown.SCC]
			newIdx, err := sub.AddEdge(sDown.Vertex, eDown.Vertex, e.W)
			if err != nil {
				panic("scc: intra-component edge out of range, vertex mapping is inconsistent")
			}
			edgeDown[idx] = newIdx
		} else {
			newIdx, err := interSCC.AddEdge(e.S, e.E, e.W)
			if err != nil {
				panic("scc: inter-component edge out of range, source graph is inconsistent")
			}
			edgeDown[idx] = newIdx
		}
	}

	return &Decomposition{
		InterSCC:     interSCC,
		SCCSubgraphs: sccSubgraphs,
		VertexUp:     vertexUp,
		VertexDown:   vertexDown,
		EdgeDown:     edgeDown,
	}
}

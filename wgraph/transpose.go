package wgraph

// Transpose returns a deep copy of g with every edge's direction reversed
// and adj/radj swapped to match. g itself is left untouched.
//
// Transpose is its own inverse: g.Transpose().Transpose() is edge-for-edge
// equal to g, since each call only swaps S/E and Adj/Radj, both of which
// are their own inverse.
func (g *Graph) Transpose() *Graph {
	n := g.N()
	gt := &Graph{
		Phi:   append([]Weight(nil), g.Phi...),
		Edges: make([]Edge, len(g.Edges)),
		Adj:   make([][]int, n),
		Radj:  make([][]int, n),
		IsSCC: g.IsSCC,
	}

	for i, e := range g.Edges {
		gt.Edges[i] = Edge{S: e.E, E: e.S, W: e.W}
	}
	for v := 0; v < n; v++ {
		gt.Adj[v] = append([]int(nil), g.Radj[v]...)
		gt.Radj[v] = append([]int(nil), g.Adj[v]...)
	}

	if g.useDels {
		gt.useDels = true
		gt.delV = append([]bool(nil), g.delV...)
		gt.delE = append([]bool(nil), g.delE...)
	}

	return gt
}

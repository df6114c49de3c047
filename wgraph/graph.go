package wgraph

// New returns a graph with n vertices, zero potentials, and no edges.
func New(n int) *Graph {
	return &Graph{
		Phi:  make([]Weight, n),
		Adj:  make([][]int, n),
		Radj: make([][]int, n),
	}
}

// NewSCC is New with IsSCC set, for callers that already know the graph
// they are constructing is strongly connected (e.g. scc.Decomposition's
// per-component subgraphs).
func NewSCC(n int) *Graph {
	g := New(n)
	g.IsSCC = true
	return g
}

// N reports the number of vertices.
func (g *Graph) N() int { return len(g.Phi) }

// M reports the number of edges.
func (g *Graph) M() int { return len(g.Edges) }

// Deg reports the out-degree of v, counting edges regardless of deletion
// state.
func (g *Graph) Deg(v int) int { return len(g.Adj[v]) }

// AddVertex appends a vertex with the given initial potential and returns
// its index.
func (g *Graph) AddVertex(phi Weight) int {
	g.Phi = append(g.Phi, phi)
	g.Adj = append(g.Adj, nil)
	g.Radj = append(g.Radj, nil)
	if g.useDels {
		g.delV = append(g.delV, false)
	}
	return len(g.Phi) - 1
}

// AddEdge appends edge (s, e, w) and returns its index. Both endpoints must
// already exist; otherwise ErrOutOfRange is returned and the graph is left
// unmodified.
func (g *Graph) AddEdge(s, e int, w Weight) (int, error) {
	n := g.N()
	if s < 0 || s >= n || e < 0 || e >= n {
		return 0, ErrOutOfRange
	}

	idx := len(g.Edges)
	g.Edges = append(g.Edges, Edge{S: s, E: e, W: w})
	g.Adj[s] = append(g.Adj[s], idx)
	g.Radj[e] = append(g.Radj[e], idx)
	if g.useDels {
		g.delE = append(g.delE, false)
	}
	return idx, nil
}

// Clone returns a deep copy of g, sharing no backing arrays with it. Used
// by callers (e.g. the scaling driver) that need to rewrite edge weights
// or potentials without disturbing the graph the caller still holds.
func (g *Graph) Clone() *Graph {
	n := g.N()
	h := &Graph{
		Phi:   append([]Weight(nil), g.Phi...),
		Edges: append([]Edge(nil), g.Edges...),
		Adj:   make([][]int, n),
		Radj:  make([][]int, n),
		IsSCC: g.IsSCC,
	}
	for v := 0; v < n; v++ {
		h.Adj[v] = append([]int(nil), g.Adj[v]...)
		h.Radj[v] = append([]int(nil), g.Radj[v]...)
	}
	if g.useDels {
		h.useDels = true
		h.delV = append([]bool(nil), g.delV...)
		h.delE = append([]bool(nil), g.delE...)
	}
	return h
}

// Weight returns the reduced weight of edge index idx: w(e) + phi[s] -
// phi[e]. It is always recomputed from Phi; no cached value is ever stale.
func (g *Graph) Weight(idx int) Weight {
	e := g.Edges[idx]
	return e.W + g.Phi[e.S] - g.Phi[e.E]
}

// MinWeight returns the minimum reduced edge weight over all edges, or Inf
// if the graph has no edges.
func (g *Graph) MinWeight() Weight {
	if len(g.Edges) == 0 {
		return Inf
	}
	min := g.Weight(0)
	for i := 1; i < len(g.Edges); i++ {
		if w := g.Weight(i); w < min {
			min = w
		}
	}
	return min
}

// IsRestricted reports whether every reduced edge weight is >= -1.
func (g *Graph) IsRestricted() bool {
	return g.MinWeight() >= -1
}

// InitialDist returns a fresh distance vector initialized to Inf for every
// vertex.
func (g *Graph) InitialDist() []Weight {
	dist := make([]Weight, g.N())
	for i := range dist {
		dist[i] = Inf
	}
	return dist
}

package scc

import "github.com/negsssp/bcf23/wgraph"

// Index locates a vertex within the decomposition: which component it fell
// into, and its index within that component's subgraph.
type Index struct {
	SCC    int
	Vertex int
}

// Invalid is the sentinel for an as-yet-unassigned vertex.
var Invalid = Index{SCC: -1, Vertex: -1}

// Decomposition holds the result of decomposing a graph into its strongly
// connected components.
type Decomposition struct {
	// InterSCC carries only the inter-component edges, indexed by the
	// original graph's vertex indices (same N as the source graph).
	InterSCC *wgraph.Graph

	// SCCSubgraphs holds one subgraph per component, containing only that
	// component's vertices (renumbered from 0) and intra-component edges.
	// Every subgraph vertex is seeded with potential 0, independent of the
	// source graph's potentials.
	SCCSubgraphs []*wgraph.Graph

	// VertexUp maps, per component, subgraph vertex index -> original
	// vertex index.
	VertexUp [][]int

	// VertexDown maps original vertex index -> Index into VertexUp/
	// SCCSubgraphs. Always populated for every vertex of the source graph
	// unless the vertex is soft-deleted, in which case it stays Invalid.
	VertexDown []Index

	// EdgeDown maps original edge index -> its index in the destination
	// graph (SCCSubgraphs[sccIdx] if intra-component, InterSCC if not).
	// Soft-deleted edges map to -1.
	EdgeDown []int
}

// NumSCC reports the number of components found.
func (d *Decomposition) NumSCC() int { return len(d.SCCSubgraphs) }

// InSameSCC reports whether v1 and v2 fell into the same component.
func (d *Decomposition) InSameSCC(v1, v2 int) bool {
	return d.VertexDown[v1].SCC == d.VertexDown[v2].SCC
}

// EdgeIndex locates edge idx (an index into the original graph's edge
// list) within the decomposition: (sccIdx, localIdx) if both endpoints fell
// into the same component, or (-1, localIdx) if it crossed components, where
// localIdx indexes into the owning subgraph or InterSCC respectively.
func (d *Decomposition) EdgeIndex(g *wgraph.Graph, edgeIdx int) Index {
	e := g.Edges[edgeIdx]
	if d.InSameSCC(e.S, e.E) {
		return Index{SCC: d.VertexDown[e.S].SCC, Vertex: d.EdgeDown[edgeIdx]}
	}
	return Index{SCC: -1, Vertex: d.EdgeDown[edgeIdx]}
}

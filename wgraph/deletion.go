package wgraph

// EnableDeletions turns on the soft-deletion overlay: DeleteVertex/DeleteEdge
// become effective and DeletedVertex/DeletedEdge start reporting them. Safe
// to call when already enabled (resets nothing).
func (g *Graph) EnableDeletions() {
	if g.useDels {
		return
	}
	g.useDels = true
	g.delV = make([]bool, g.N())
	g.delE = make([]bool, g.M())
}

// DisableDeletions turns the overlay off and clears both deletion sets.
func (g *Graph) DisableDeletions() {
	g.useDels = false
	g.delV = nil
	g.delE = nil
}

// DeleteVertex marks v as soft-deleted. Adjacency is untouched; primitives
// must check DeletedVertex before visiting v.
func (g *Graph) DeleteVertex(v int) {
	if g.useDels {
		g.delV[v] = true
	}
}

// DeleteEdge marks edge idx as soft-deleted.
func (g *Graph) DeleteEdge(idx int) {
	if g.useDels {
		g.delE[idx] = true
	}
}

// DeletedVertex reports whether v is currently soft-deleted. Always false
// when deletions are disabled.
func (g *Graph) DeletedVertex(v int) bool {
	return g.useDels && g.delV[v]
}

// DeletedEdge reports whether edge idx is currently soft-deleted.
func (g *Graph) DeletedEdge(idx int) bool {
	return g.useDels && g.delE[idx]
}

// ClearVertexDeletions clears only the deleted-vertex set, keeping edge
// deletions and the overlay enabled. Used by rsssp between the carving and
// SCC-decomposition steps of its recursion, where the carved vertices must
// rejoin the graph but the edges trimmed during carving must not.
func (g *Graph) ClearVertexDeletions() {
	if !g.useDels {
		return
	}
	for i := range g.delV {
		g.delV[i] = false
	}
}

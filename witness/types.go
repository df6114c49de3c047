package witness

import "github.com/negsssp/bcf23/wgraph"

// State tags which payload a Witness carries.
type State int

const (
	// Unknown means the solver did not produce a result: a capper budget was
	// exhausted, or a recursive sub-result failed validation.
	Unknown State = iota
	// ShortestPathTree means Dist/ParentEdge/PureDist are populated.
	ShortestPathTree
	// NegativeCycle means NegativeCycleEdges is populated.
	NegativeCycle
)

// NoParent marks a vertex with no parent edge in a ShortestPathTree witness:
// either it is a root of the tree, or it was never reached.
const NoParent = -1

// Witness is the outcome of one SSSP attempt.
//
// Dist is the distance vector under reduced weights (wgraph.Graph.Weight).
// ParentEdge[v], if not NoParent, is the index of the edge that last
// relaxed v; PureDist is the distance under raw (unreduced) weights,
// reconstructed from ParentEdge by Validate.
type Witness struct {
	State State

	Dist       []wgraph.Weight
	ParentEdge []int
	PureDist   []wgraph.Weight

	NegativeCycleEdges []int
}

// UnknownWitness is the zero-information witness returned on capper
// exhaustion or a failed recursive sub-result.
func UnknownWitness() Witness {
	return Witness{State: Unknown}
}

// NewShortestPathTree builds a ShortestPathTree witness from a distance
// vector and an optional (possibly nil) parent-edge vector. PureDist is left
// unpopulated until Validate runs.
func NewShortestPathTree(dist []wgraph.Weight, parentEdge []int) Witness {
	return Witness{
		State:      ShortestPathTree,
		Dist:       dist,
		ParentEdge: parentEdge,
	}
}

// NewNegativeCycle builds a NegativeCycle witness from the cycle's edge
// indices, in traversal order.
func NewNegativeCycle(edges []int) Witness {
	return Witness{
		State:              NegativeCycle,
		NegativeCycleEdges: edges,
	}
}

// Validate checks this witness against g, dispatching on State. It returns
// false unconditionally for Unknown. For ShortestPathTree it also populates
// w.PureDist as a side effect when a parent-edge vector was supplied.
func (w *Witness) Validate(g *wgraph.Graph) bool {
	switch w.State {
	case ShortestPathTree:
		ok, pure := ValidateShortestPathTree(g, w.Dist, w.ParentEdge, false)
		w.PureDist = pure
		return ok
	case NegativeCycle:
		return ValidateNegativeCycle(g, w.NegativeCycleEdges)
	default:
		return false
	}
}

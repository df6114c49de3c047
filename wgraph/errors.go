package wgraph

import "errors"

// Sentinel errors returned by wgraph. These signal a caller mistake — a
// malformed request, not a data fault — so a caller is expected to treat
// them as a bug, not retry.
var (
	// ErrOutOfRange indicates AddEdge was given a vertex index outside [0, N).
	ErrOutOfRange = errors.New("wgraph: vertex index out of range")
)

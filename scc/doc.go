// Package scc decomposes a wgraph.Graph into strongly connected components
// via Kosaraju's algorithm: a forward DFS recording finish order, then a
// backward DFS over the transpose in decreasing finish order assigning
// component ids, then a single edge pass splitting intra-component edges
// (which become edges of a per-component subgraph) from inter-component
// edges (which become edges of a DAG over the original vertex indices).
//
// Both DFS passes use an explicit stack rather than Go's call stack: the
// recursion primitive this is built for runs on graphs with up to 10^5-10^6
// vertices, where native recursion risks stack overflow.
//
// Grounded on original_source/src/scc.hpp's SCCDecomposition.
package scc

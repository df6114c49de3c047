// Package sssp is the top-level scaling driver: it turns an arbitrary
// directed graph with negative edges (but no negative cycle) into a
// sequence of restricted graphs that rsssp.Solve can consume.
//
// Grounded on original_source/src/sssp.hpp. That file's sssp() function is
// truncated in the retrieved snapshot (it performs the initial x4N rescale
// and nothing else); Solve here completes it with the scaling loop and
// final Dijkstra pass — see DESIGN.md for the reasoning behind both.
package sssp

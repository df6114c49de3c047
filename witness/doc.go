// Package witness is the certificate format every BCF23 primitive returns:
// a tagged variant over "no result yet", "here is a shortest-path tree", or
// "here is a negative cycle", plus the validators that let a caller check a
// witness independently of how it was produced.
//
// Unlike the C++ source (original_source/src/spresult.hpp), which carries an
// enum tag alongside two payload vectors only one of which is ever
// meaningful, Witness keeps all three payload sets on one struct but the
// package only ever populates the one matching its State — construct
// witnesses through NewShortestPathTree/NewNegativeCycle/UnknownWitness rather than
// building a Witness literal directly.
package witness

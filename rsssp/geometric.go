package rsssp

import (
	"math"
	"math/rand"

	"github.com/negsssp/bcf23/wgraph"
)

// sampleGeometric draws from a geometric distribution over {0, 1, 2, ...}
// with success probability p (the number of failures before the first
// success), via inverse-CDF sampling: floor(log(1-u) / log(1-p)).
//
// Grounded on original_source/src/rsssp.hpp's use of
// std::geometric_distribution; Go's math/rand has no built-in equivalent.
func sampleGeometric(rng *rand.Rand, p float64) wgraph.Weight {
	if p <= 0 {
		return wgraph.Inf
	}
	if p >= 1 {
		return 0
	}

	u := rng.Float64()
	v := math.Floor(math.Log(1-u) / math.Log(1-p))
	if v < 0 {
		v = 0
	}
	return wgraph.Weight(v)
}

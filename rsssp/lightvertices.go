package rsssp

import (
	"math"

	"github.com/negsssp/bcf23/capper"
	"github.com/negsssp/bcf23/config"
	"github.com/negsssp/bcf23/spalgo"
	"github.com/negsssp/bcf23/wgraph"
)

// getInLightVertices Monte Carlo estimates, for every vertex, whether its
// ball of radius kappa/4 (under non-negative reduced weights) is "small" —
// at most LightRatio * n — by sampling random single-source Dijkstra runs
// and counting how often each vertex falls within that radius. g must have
// at least 2 vertices. Returns nil if the capper is exhausted mid-sample.
//
// Grounded on original_source/src/rsssp.hpp's get_in_light_vertices.
func getInLightVertices(g *wgraph.Graph, kappa int, cfg *config.Config) []int {
	n := g.N()
	k := int(math.Ceil(ballEstimatorSampleCoeff * math.Log(float64(n))))

	ballCounter := make([]int, n)
	radius := wgraph.Weight(kappa / 4)

	for i := 0; i < k; i++ {
		v := cfg.Rng.Intn(n)

		if !cfg.Capper.Incr(1) {
			return nil
		}
		dist := spalgo.SingleSource(g, v, true, capper.NewUnbounded())

		for j := 0; j < n; j++ {
			if dist[j] <= radius {
				ballCounter[j]++
			}
		}
	}

	threshold := LightRatio * float64(k)
	var result []int
	for i := 0; i < n; i++ {
		if float64(ballCounter[i]) <= threshold {
			result = append(result, i)
		}
	}
	return result
}

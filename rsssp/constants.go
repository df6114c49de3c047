package rsssp

// LowKappaLimit is the kappa threshold below which the recursion falls
// straight to the base case (a single all-source lazy-Dijkstra pass)
// instead of carving.
const LowKappaLimit = 2

// ballEstimationAdditiveError is the eps such that the light-vertex ball
// size estimator's additive error is <= eps * n.
const ballEstimationAdditiveError = 0.125

// LightRatio bounds a "light" vertex's estimated ball size, and also
// bounds the vertex count (as a fraction of the parent's) up to which an
// SCC produced by carving recurses with the same kappa; a larger SCC
// recurses with kappa halved instead.
const LightRatio = 0.5 + 2*ballEstimationAdditiveError

// ballEstimatorSampleCoeff scales the number of Monte Carlo samples taken
// per light-vertex estimate: 5 / eps^2.
const ballEstimatorSampleCoeff = 5 / (ballEstimationAdditiveError * ballEstimationAdditiveError)

// RadiusTemperature scales the geometric distribution's parameter used
// when sampling a carving radius.
const RadiusTemperature = 20

// Package config bundles the two pieces of state every BCF23 primitive
// needs but none of them owns: an operation-count budget (capper.Capper) and
// a deterministic random source. A *Config is created once per top-level
// solve call and threaded by reference through the entire recursive call
// tree — never captured in a package-level global — so that every nested
// call advances the same RNG stream and accumulates against the same
// budget.
//
// Two constructors cover the two capper.Capper flavors: Trivial for an
// unbounded run, Capped for a run that aborts (returning a witness.Unknown
// up the call tree) once its operation budget is exhausted.
package config

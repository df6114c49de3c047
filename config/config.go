package config

import (
	"math/rand"

	"github.com/negsssp/bcf23/capper"
)

// Config owns a Capper and a seeded RNG, shared mutably across an entire
// solve call tree.
type Config struct {
	Capper capper.Capper
	Rng    *rand.Rand
}

// Trivial returns a Config with an unbounded Capper (never fails) and an RNG
// seeded from seed.
func Trivial(seed uint64) *Config {
	return &Config{
		Capper: capper.NewUnbounded(),
		Rng:    rand.New(rand.NewSource(int64(seed))), //nolint:gosec // deterministic by design
	}
}

// Capped returns a Config with a Capper that fails once more than budget
// operations have been spent, and an RNG seeded from seed.
func Capped(budget uint64, seed uint64) *Config {
	return &Config{
		Capper: capper.NewBounded(budget),
		Rng:    rand.New(rand.NewSource(int64(seed))), //nolint:gosec // deterministic by design
	}
}

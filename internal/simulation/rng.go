package simulation

import "math/rand/v2"

// AvulsionMode selects which of the two avulsion-triggering rules from the
// original header set the simulation uses (spec.md §4.8/§9).
type AvulsionMode int

const (
	// DeterministicAvulsion triggers whenever the threshold preconditions in
	// spec.md §4.6 hold. This is the form spec.md prefers, reproducible and
	// testable, and the default for every Simulation.
	DeterministicAvulsion AvulsionMode = iota
	// ProbabilisticAvulsion additionally rolls the seeded RNG once per
	// qualifying channel and only triggers if the roll is below
	// Config.AvulsionProbability. Exposed for completeness with the
	// original header set; not used unless explicitly selected.
	ProbabilisticAvulsion
)

// rng wraps a seeded PRNG, used only by ProbabilisticAvulsion. The
// deterministic threshold path never consults it, so a simulation run under
// DeterministicAvulsion is reproducible independent of seed.
type rng struct {
	source *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{source: rand.New(rand.NewPCG(uint64(seed), uint64(seed>>32)+1))}
}

// chance returns true with probability p, consuming one draw.
func (r *rng) chance(p float64) bool {
	return r.source.Float64() < p
}

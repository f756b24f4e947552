package simulation

import "meanderflow/internal/config"

// Config bundles the physical Parameters with the simulation-level knobs
// spec.md §9 asks to be re-architected out of global statics: an immutable
// record passed into New, so independent simulations can run with different
// tunings in the same process.
type Config struct {
	Parameters config.Parameters

	// AvulsionMode selects the triggering rule; defaults to
	// DeterministicAvulsion (the zero value).
	AvulsionMode AvulsionMode
	// AvulsionProbability is consulted only under ProbabilisticAvulsion.
	AvulsionProbability float64

	// Debug enables the §4.8 SanityCheckChannels pass to additionally log at
	// a severity that panics in development zap configurations, surfacing
	// degenerate geometry immediately instead of silently dropping it.
	Debug bool
}

// DefaultConfig returns a Config built from config.Default(), deterministic
// avulsion, and Debug off.
func DefaultConfig() Config {
	return Config{
		Parameters:   config.Default(),
		AvulsionMode: DeterministicAvulsion,
	}
}

// Package config holds the simulation's tunable parameters. Unlike the
// teacher's config.Settings, which is decoded into a package-level global
// (config/settings.go, loadSettings/globalSettings), Parameters is an
// immutable value passed into the simulation constructor, so independent
// simulations with different tunings can coexist in one process.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Parameters holds the §6 default parameter table. All fields are in SI
// units (meters, seconds, dimensionless) as specified.
type Parameters struct {
	// Omega is the local-curvature coefficient (Ikeda et al., 1981).
	Omega float64 `json:"omega"`
	// Gamma is the total-rate coefficient (Howard and Knutson, 1984).
	Gamma float64 `json:"gamma"`
	// K is the Howard 1984 constant in the upstream-weighting exponential.
	K float64 `json:"k"`
	// K1 is the migration-rate constant, m/s.
	K1 float64 `json:"k1"`
	// Cf is the dimensionless Chezy friction coefficient.
	Cf float64 `json:"cf"`
	// Dt is the simulation time step, seconds.
	Dt float64 `json:"dt"`
	// Kv is the vertical erosion rate constant, m/s.
	Kv float64 `json:"kv"`
	// MaxSlope clamps the terrain-slope contribution to migration direction.
	MaxSlope float64 `json:"maxSlope"`
	// TAvulsion is the migration-rate threshold that triggers an avulsion.
	TAvulsion float64 `json:"tAvulsion"`
	// TAvulsionLength is the minimum channel length eligible for avulsion, meters.
	TAvulsionLength float64 `json:"tAvulsionLength"`
	// ChannelFalloff is the fraction of each end of a channel over which
	// migration is smoothly suppressed to zero, in [0, 1].
	ChannelFalloff float64 `json:"channelFalloff"`
	// SamplingDistance is the maximum vertex spacing maintained by Resample, meters.
	SamplingDistance float64 `json:"samplingDistance"`
}

// Default returns the §6 default parameter table.
func Default() Parameters {
	return Parameters{
		Omega:            -1.0,
		Gamma:            2.5,
		K:                1.0,
		K1:               60.0 / (365 * 24 * float64(time.Hour/time.Second)),
		Cf:               0.011,
		Dt:               9_460_800.0,
		Kv:               1e-12,
		MaxSlope:         0.1,
		TAvulsion:        5e-8,
		TAvulsionLength:  250.0,
		ChannelFalloff:   0.1,
		SamplingDistance: 50.0,
	}
}

// Load decodes a JSON override file onto Default(), the way the teacher's
// config.loadSettings opens settings.json and decodes over its own
// defaults-filled struct. A missing file is not an error: the defaults are
// returned unchanged.
func Load(path string) (Parameters, error) {
	params := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return params, nil
		}
		return params, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&params); err != nil {
		return params, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return params, nil
}

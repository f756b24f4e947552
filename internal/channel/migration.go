package channel

import (
	"math"

	"meanderflow/internal/config"
	"meanderflow/internal/vecmath"
)

// ComputeMigrationRates runs the two-phase Howard-Knutson migration-rate
// model (spec.md §4.3): a local Ikeda rate at every interior vertex, then a
// non-local weighted upstream/downstream integral of those local rates, then
// a channel-falloff envelope that pins both endpoints to zero. Frozen
// (oxbow) channels are left untouched by the caller, not here — see
// simulation's phase-1 loop.
func (c *Channel) ComputeMigrationRates(p config.Parameters) {
	c.computeLocalMigrationRates(p)
	c.computeTotalMigrationRates(p)
}

// computeLocalMigrationRates applies the Ikeda et al., 1981 local rate:
// R_local(i) = Omega * ScaledCurvature(i), zero at the endpoints.
func (c *Channel) computeLocalMigrationRates(p config.Parameters) {
	n := len(c.points)
	rates := make([]float64, n)
	for i := 1; i < n-1; i++ {
		rates[i] = p.Omega * c.ScaledCurvature(i)
	}
	c.localMigrationRates = rates
}

// computeTotalMigrationRates applies the Howard and Knutson, 1984 non-local
// convolution: every vertex's total rate is a distance-weighted sum of every
// other vertex's local rate, decaying exponentially with cumulative arc
// length separation, plus its own local term, scaled by Gamma. A
// channel-falloff envelope then pins the first and last
// ChannelFalloff*|points| vertices smoothly to zero.
//
// Iteration is strictly in index order and accumulates into a scratch array
// before writing back, per spec.md §4.3/§5's determinism requirement.
func (c *Channel) computeTotalMigrationRates(p config.Parameters) {
	n := len(c.points)
	rates := make([]float64, n)
	if n == 0 {
		c.migrationRates = rates
		return
	}

	cfU := 2.0 * p.Cf / c.depth
	arcLength := c.CurvilinearLength()

	normalizationLength := 1.0
	if cfU > 0 {
		normalizationLength = 1.0 / cfU
	}

	upstream := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			s := math.Abs(arcLength[i] - arcLength[j])
			weight := math.Exp(-2.0 * p.K * cfU * s)
			sum += c.localMigrationRates[j] * weight
		}
		upstream[i] = sum
	}

	falloffCount := falloffVertexCount(n, p.ChannelFalloff)
	for i := 0; i < n; i++ {
		raw := p.Gamma * (c.localMigrationRates[i] + upstream[i]/normalizationLength)
		rates[i] = raw * falloffEnvelope(i, n, falloffCount)
	}

	c.migrationRates = rates
}

// falloffVertexCount returns how many vertices at each end of the channel
// fall within the falloff envelope, at least 1 so the endpoints are always
// pinned to exactly zero.
func falloffVertexCount(n int, fraction float64) int {
	count := int(fraction * float64(n))
	if count < 1 {
		count = 1
	}
	if count > n/2 {
		count = n / 2
	}
	return count
}

// falloffEnvelope returns the [0, 1] multiplier for vertex i: a cubic
// smoothstep ramp over the first/last falloffCount vertices, 1 elsewhere.
func falloffEnvelope(i, n, falloffCount int) float64 {
	if falloffCount <= 0 {
		return 1.0
	}
	if i < falloffCount {
		return vecmath.SmoothStep(float64(i) / float64(falloffCount))
	}
	if i >= n-falloffCount {
		return vecmath.SmoothStep(float64(n-1-i) / float64(falloffCount))
	}
	return 1.0
}

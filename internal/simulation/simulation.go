// Package simulation orchestrates the meander evolution engine: the
// five-phase step pipeline over a set of channels sharing one terrain field,
// gradient cache, and constraint set.
//
// Grounded on the teacher's main.go (construct once, then loop over named
// phases) and server.go's simulationLoop (a loop of discrete named mutation
// steps over shared state) for the orchestration shape.
package simulation

import (
	"fmt"

	"go.uber.org/zap"

	"meanderflow/internal/channel"
	"meanderflow/internal/constraint"
	"meanderflow/internal/field"
	"meanderflow/internal/vecmath"
)

// Simulation is the MeanderSimulation of spec.md §4.8: a terrain field, a
// cached gradient grid, a set of channels, and a set of point constraints,
// advanced one Step at a time.
type Simulation struct {
	cfg    Config
	logger *zap.SugaredLogger

	terrain  *field.ScalarField2D
	gradient *field.Grid2[vecmath.Vector2]
	box      field.Box2D

	channels    []*channel.Channel
	constraints constraint.Set

	rng *rng

	stepCount int
}

// New builds a Simulation over terrain, seeded for any stochastic extension
// (spec.md §6). The terrain's domain becomes the simulation's Box2D; its
// gradient is cached once here rather than resampled per vertex per step.
func New(seed int64, terrain *field.ScalarField2D, cfg Config, logger *zap.Logger) *Simulation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulation{
		cfg:      cfg,
		logger:   logger.Sugar(),
		terrain:  terrain,
		gradient: field.CacheGradient(terrain),
		box:      terrain.Box(),
		rng:      newRNG(seed),
	}
}

// AddChannel validates and adds a channel to the simulation (spec.md §6).
// points must have at least 4 vertices, all inside the domain, and width
// must be positive.
func (s *Simulation) AddChannel(points []vecmath.Vector2, width float64) error {
	for _, p := range points {
		if !s.box.Contains(p) {
			return fmt.Errorf("%w: %v", channel.ErrOutsideDomain, p)
		}
	}
	ch, err := channel.New(points, width)
	if err != nil {
		return err
	}
	s.channels = append(s.channels, ch)
	return nil
}

// AddPointConstraint validates and adds an attractor/repeller (spec.md §6).
// radius must be positive; strength may be negative.
func (s *Simulation) AddPointConstraint(center vecmath.Vector2, radius, strength float64) error {
	if radius <= 0 {
		return fmt.Errorf("%w: got %g", channel.ErrNonPositiveRadius, radius)
	}
	s.constraints = append(s.constraints, constraint.New(center, radius, strength))
	return nil
}

// GetChannels returns the current channel set. Callers must treat it as
// read-only: mutation is the simulation's exclusive responsibility (spec.md
// §3 Ownership).
func (s *Simulation) GetChannels() []*channel.Channel {
	out := make([]*channel.Channel, len(s.channels))
	copy(out, s.channels)
	return out
}

// GetBox returns the simulation domain.
func (s *Simulation) GetBox() field.Box2D {
	return s.box
}

// StepCount returns how many steps have been run so far.
func (s *Simulation) StepCount() int {
	return s.stepCount
}

// Step runs the five-phase pipeline of spec.md §4.8 exactly once:
// migration-rate computation, advection, cutoff management, avulsion
// management, and resampling, followed by a sanity pass.
func (s *Simulation) Step() {
	s.computeMigrationRates()
	s.migrateAllChannels()
	s.manageCutoffs()
	s.triggerAvulsionPass()
	s.resampleChannels()
	s.sanityCheckChannels()
	s.stepCount++
}

// StepN runs Step n times.
func (s *Simulation) StepN(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// TriggerAvulsion manually scans every channel and runs an avulsion for each
// that satisfies the spec.md §4.6 preconditions, outside the normal Step
// cadence.
func (s *Simulation) TriggerAvulsion() {
	s.triggerAvulsionPass()
}

func (s *Simulation) computeMigrationRates() {
	for _, ch := range s.channels {
		if ch.Frozen() {
			continue
		}
		ch.ComputeMigrationRates(s.cfg.Parameters)
	}
}

func (s *Simulation) migrateAllChannels() {
	for _, ch := range s.channels {
		if ch.Frozen() {
			continue
		}
		ch.Migrate(s.cfg.Parameters, s.box, s.gradient, s.constraints)
	}
}

func (s *Simulation) resampleChannels() {
	for _, ch := range s.channels {
		ch.Resample(s.cfg.Parameters.SamplingDistance)
	}
}

package simulation

import "meanderflow/internal/channel"

// triggerAvulsionPass runs one scan over every live channel, replacing
// points[startIndex:] with a freshly routed path for each channel that meets
// the spec.md §4.6 preconditions. Each channel is mutated at most once per
// pass. A channel with no qualifying vertex, or whose path generation fails,
// is left unchanged (silent AvulsionFailure, spec.md §7).
func (s *Simulation) triggerAvulsionPass() {
	for i, ch := range s.channels {
		if ch.Frozen() {
			continue
		}
		if ch.Length() < s.cfg.Parameters.TAvulsionLength {
			continue
		}

		startIndex, ok := ch.AvulsionCandidate(s.cfg.Parameters.TAvulsion)
		if !ok {
			continue
		}

		if s.cfg.AvulsionMode == ProbabilisticAvulsion && !s.rng.chance(s.cfg.AvulsionProbability) {
			continue
		}

		newPoints, ok := ch.DoAvulsion(startIndex, s.box, s.gradient, s.cfg.Parameters.SamplingDistance)
		if !ok {
			s.logger.Infow("avulsion aborted: no viable path", "channel", i, "startIndex", startIndex)
			continue
		}

		newChannel, err := channel.New(newPoints, ch.Width())
		if err != nil {
			s.logger.Warnw("avulsion produced degenerate channel, keeping original",
				"channel", i, "error", err)
			continue
		}
		s.channels[i] = newChannel
		s.logger.Infow("avulsion triggered", "channel", i, "startIndex", startIndex)
	}
}

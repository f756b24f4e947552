package simulation

import (
	"meanderflow/internal/field"
	"meanderflow/internal/vecmath"
)

// sanityCheckChannels is the spec.md §4.8/§7 check, run after every step: every
// channel must have at least 4 points, all inside the domain, with no NaN
// coordinate and no duplicated adjacent point. A channel that fails is
// dropped with a logged warning (DegenerateGeometry); under Config.Debug the
// same violation is additionally logged at a level that panics under a
// development zap configuration, surfacing the bug immediately instead of
// silently trimming it away.
func (s *Simulation) sanityCheckChannels() {
	kept := s.channels[:0:0]
	for i, ch := range s.channels {
		if reason, ok := firstSanityViolation(ch, s.box); !ok {
			s.logger.Warnw("dropping degenerate channel", "channel", i, "reason", reason)
			if s.cfg.Debug {
				s.logger.DPanicw("degenerate channel survived a step", "channel", i, "reason", reason)
			}
			continue
		}
		kept = append(kept, ch)
	}
	s.channels = kept
}

type channelPoints interface {
	Size() int
	Point(i int) vecmath.Vector2
}

// firstSanityViolation reports the first violated invariant, if any.
func firstSanityViolation(ch channelPoints, box field.Box2D) (string, bool) {
	n := ch.Size()
	if n < 4 {
		return "fewer than 4 points", false
	}
	for i := 0; i < n; i++ {
		p := ch.Point(i)
		if !p.IsFinite() {
			return "non-finite coordinate", false
		}
		if !box.Contains(p) {
			return "point outside domain", false
		}
		if i > 0 && p == ch.Point(i-1) {
			return "duplicated adjacent point", false
		}
	}
	return "", true
}

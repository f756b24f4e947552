package simulation

import "meanderflow/internal/channel"

// manageCutoffs repeatedly scans the channel set for self-intersections and
// resolves them one at a time: each cutoff is applied before the next scan
// starts, so an index invalidated by a just-applied cutoff is never read.
func (s *Simulation) manageCutoffs() {
	for {
		cutIndex, ev, found := s.findFirstCutoff()
		if !found {
			return
		}
		s.applyCutoff(cutIndex, ev)
	}
}

func (s *Simulation) findFirstCutoff() (int, channel.CutoffEvent, bool) {
	for i, ch := range s.channels {
		// A frozen oxbow never migrates; only resampling touches it, and that
		// keeps its vertices on its existing segments. It cannot develop a
		// new self-intersection, so it is not scanned. Intersections between
		// different channels are not checked.
		if ch.Frozen() {
			continue
		}
		if ev, ok := ch.FindFirstIntersection(); ok {
			return i, ev, true
		}
	}
	return 0, channel.CutoffEvent{}, false
}

func (s *Simulation) applyCutoff(index int, ev channel.CutoffEvent) {
	original := s.channels[index]
	mainPoints, oxbowPoints := original.DoCutoff(ev)

	mainChannel, err := channel.New(mainPoints, original.Width())
	if err != nil {
		s.logger.Warnw("cutoff produced degenerate main channel, dropping",
			"error", err)
		s.channels = append(s.channels[:index], s.channels[index+1:]...)
		return
	}
	s.channels[index] = mainChannel

	oxbow, err := channel.New(oxbowPoints, original.Width())
	if err != nil {
		s.logger.Warnw("cutoff produced degenerate oxbow remnant, dropping",
			"error", err)
		return
	}
	oxbow.Freeze()
	s.channels = append(s.channels, oxbow)

	s.logger.Infow("neck cutoff resolved",
		"channel", index, "mainVertices", mainChannel.Size(), "oxbowVertices", oxbow.Size())
}

package scrollseq

import "time"

// drawStats holds per-draw timing and counters. drawTime is only measured
// when debug mode is on.
type drawStats struct {
	draws    int
	skipped  int
	events   int // host events folded into the pending draw
	drawTime time.Duration
}

// Stats is a snapshot of a sequence's draw counters.
type Stats struct {
	Draws    int
	Skipped  int
	Settled  int
	Failed   int
	Frames   int
	LastDraw time.Duration
}

// Stats returns the current draw and load counters.
func (s *ScrollSequence) Stats() Stats {
	return Stats{
		Draws:    s.stats.draws,
		Skipped:  s.stats.skipped,
		Settled:  s.cache.Settled(),
		Failed:   len(s.cache.Failed()),
		Frames:   s.cache.Len(),
		LastDraw: s.stats.drawTime,
	}
}

// debugLog prints the stats of the draw that just happened.
func (s *ScrollSequence) debugLog() {
	if !s.debug {
		return
	}
	logf("draw: frame %d | progress %.4f | events folded: %d | time: %v",
		s.drawnFrame, s.progress, s.stats.events, s.stats.drawTime)
	logf("totals: draws %d | skipped %d", s.stats.draws, s.stats.skipped)
}

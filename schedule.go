package scrollseq

import (
	"fmt"
	"math"
)

// Breakpoint is one control point of a frame schedule: at scroll progress
// Progress the sequence shows frame Frame (fractional values are allowed
// between points and rounded on lookup).
type Breakpoint struct {
	Progress float64 `koanf:"progress" yaml:"progress"`
	Frame    float64 `koanf:"frame" yaml:"frame"`
}

// Schedule maps scroll progress to a frame index by piecewise-linear
// interpolation between breakpoints. Before the first breakpoint and after the
// last one the frame holds constant.
type Schedule struct {
	points []Breakpoint
	frames int
}

// NewSchedule validates the breakpoints against a sequence of n frames.
// Breakpoints must be non-empty, non-decreasing in both progress and frame,
// with progress in [0, 1] and frame in [0, n-1].
func NewSchedule(n int, points []Breakpoint) (*Schedule, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: frame count %d", ErrInvalidSchedule, n)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no breakpoints", ErrInvalidSchedule)
	}
	last := float64(n - 1)
	for i, bp := range points {
		if math.IsNaN(bp.Progress) || bp.Progress < 0 || bp.Progress > 1 {
			return nil, fmt.Errorf("%w: breakpoint %d progress %v outside [0,1]", ErrInvalidSchedule, i, bp.Progress)
		}
		if math.IsNaN(bp.Frame) || bp.Frame < 0 || bp.Frame > last {
			return nil, fmt.Errorf("%w: breakpoint %d frame %v outside [0,%d]", ErrInvalidSchedule, i, bp.Frame, n-1)
		}
		if i == 0 {
			continue
		}
		prev := points[i-1]
		if bp.Progress < prev.Progress {
			return nil, fmt.Errorf("%w: breakpoint %d progress decreases", ErrInvalidSchedule, i)
		}
		if bp.Frame < prev.Frame {
			return nil, fmt.Errorf("%w: breakpoint %d frame decreases", ErrInvalidSchedule, i)
		}
	}
	pts := make([]Breakpoint, len(points))
	copy(pts, points)
	return &Schedule{points: pts, frames: n}, nil
}

// StagedBreakpoints returns the production schedule for n frames: the sequence
// plays through in three equal stages over the first 60% of the scroll range
// and holds the last frame for the remaining 40%.
//
//	progress 0    0.2       0.4        0.6  1.0
//	frame    0    (n-1)/3   2(n-1)/3   n-1  n-1
func StagedBreakpoints(n int) []Breakpoint {
	last := float64(n - 1)
	if last < 0 {
		last = 0
	}
	return []Breakpoint{
		{0, 0},
		{0.2, math.Round(last / 3)},
		{0.4, math.Round(2 * last / 3)},
		{0.6, last},
		{1, last},
	}
}

// StagedSchedule returns the production schedule for n frames.
// For 40 frames the breakpoints are 0→0, 0.2→13, 0.4→26, 0.6→39, 1→39.
func StagedSchedule(n int) *Schedule {
	s, err := NewSchedule(n, StagedBreakpoints(n))
	if err != nil {
		panic(err)
	}
	return s
}

// LinearSchedule spreads n frames evenly over the whole scroll range. It is
// meant for tooling and tests; pages use StagedSchedule.
func LinearSchedule(n int) *Schedule {
	last := float64(n - 1)
	if last < 0 {
		last = 0
	}
	s, err := NewSchedule(n, []Breakpoint{{0, 0}, {1, last}})
	if err != nil {
		panic(err)
	}
	return s
}

// Frames returns the number of frames the schedule addresses.
func (s *Schedule) Frames() int {
	return s.frames
}

// Breakpoints returns a copy of the control points.
func (s *Schedule) Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(s.points))
	copy(out, s.points)
	return out
}

// Interpolate returns the unrounded frame position for progress p.
func (s *Schedule) Interpolate(p float64) float64 {
	pts := s.points
	if math.IsNaN(p) || p <= pts[0].Progress {
		return pts[0].Frame
	}
	lastPt := pts[len(pts)-1]
	if p >= lastPt.Progress {
		return lastPt.Frame
	}
	for i := 1; i < len(pts); i++ {
		b := pts[i]
		if p > b.Progress {
			continue
		}
		a := pts[i-1]
		span := b.Progress - a.Progress
		if span <= 0 {
			return b.Frame
		}
		t := (p - a.Progress) / span
		return a.Frame + (b.Frame-a.Frame)*t
	}
	return lastPt.Frame
}

// FrameIndex returns round(Interpolate(p)) clamped into [0, n-1].
func (s *Schedule) FrameIndex(p float64) int {
	idx := int(math.Round(s.Interpolate(p)))
	if idx < 0 {
		return 0
	}
	if idx > s.frames-1 {
		return s.frames - 1
	}
	return idx
}

// ScrollProgress converts a scroll offset into progress through a tracked
// container. Progress is 0 when the container's top edge reaches the top of
// the viewport and 1 when its bottom edge reaches the bottom of the viewport.
// The result is clamped to [0, 1]; a container no taller than the viewport
// reports 0 until it is scrolled past, then 1.
func ScrollProgress(offset, containerTop, containerHeight, viewportHeight float64) float64 {
	span := containerHeight - viewportHeight
	rel := offset - containerTop
	if span <= 0 {
		if rel > 0 {
			return 1
		}
		return 0
	}
	return clamp01(rel / span)
}

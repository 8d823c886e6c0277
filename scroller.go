package scrollseq

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim is an active scroll-to tween.
type scrollAnim struct {
	tween  *gween.Tween
	target float64
}

// Scroller holds a clamped vertical scroll offset and animates smooth
// scroll-to requests.
type Scroller struct {
	offset float64
	max    float64
	anim   *scrollAnim
}

// Offset returns the current offset.
func (s *Scroller) Offset() float64 {
	return s.offset
}

// Max returns the largest reachable offset.
func (s *Scroller) Max() float64 {
	return s.max
}

// SetMax updates the scroll extent and clamps the offset into it.
func (s *Scroller) SetMax(max float64) {
	if max < 0 {
		max = 0
	}
	s.max = max
	s.offset = s.clamp(s.offset)
	if s.anim != nil {
		s.anim.target = s.clamp(s.anim.target)
	}
}

// ScrollBy moves the offset by delta immediately, cancelling any animation.
func (s *Scroller) ScrollBy(delta float64) {
	s.anim = nil
	s.offset = s.clamp(s.offset + delta)
}

// Jump sets the offset immediately, cancelling any animation.
func (s *Scroller) Jump(offset float64) {
	s.anim = nil
	s.offset = s.clamp(offset)
}

// ScrollTo animates the offset to target over duration seconds.
// A non-positive duration jumps.
func (s *Scroller) ScrollTo(target float64, duration float32, fn ease.TweenFunc) {
	target = s.clamp(target)
	if duration <= 0 {
		s.Jump(target)
		return
	}
	if fn == nil {
		fn = ease.OutCubic
	}
	s.anim = &scrollAnim{
		tween:  gween.New(float32(s.offset), float32(target), duration, fn),
		target: target,
	}
}

// Animating reports whether a scroll-to is in progress.
func (s *Scroller) Animating() bool {
	return s.anim != nil
}

// update advances an active animation by dt seconds.
func (s *Scroller) update(dt float32) {
	if s.anim == nil {
		return
	}
	v, done := s.anim.tween.Update(dt)
	if done {
		s.offset = s.anim.target
		s.anim = nil
		return
	}
	s.offset = s.clamp(float64(v))
}

func (s *Scroller) clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > s.max {
		return s.max
	}
	return v
}

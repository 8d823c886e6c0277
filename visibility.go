package scrollseq

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

const (
	// RampMargin is the width, in progress units, of an overlay's fade-in
	// after its stage starts and of its fade-out before the stage ends.
	RampMargin = 0.1
	// OverlayTravel is the vertical distance in pixels an overlay moves while
	// fading: it enters from +OverlayTravel and leaves toward -OverlayTravel.
	OverlayTravel = 20.0
)

// StageWindow is the progress sub-range during which an overlay is eligible to
// be visible and interactive. Windows of different overlays may overlap.
type StageWindow struct {
	Start float64 `koanf:"start" yaml:"start"`
	End   float64 `koanf:"end" yaml:"end"`
}

// Validate checks 0 <= Start < End <= 1.
func (w StageWindow) Validate() error {
	if math.IsNaN(w.Start) || math.IsNaN(w.End) || w.Start < 0 || w.End > 1 || w.Start >= w.End {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidStage, w.Start, w.End)
	}
	return nil
}

// Contains reports whether p lies in [Start, End].
func (w StageWindow) Contains(p float64) bool {
	return p >= w.Start && p <= w.End
}

// Visibility is the derived presentation state of one overlay at one progress
// value.
type Visibility struct {
	// Opacity in [0, 1].
	Opacity float64 `yaml:"opacity"`
	// Offset is the vertical displacement in pixels.
	Offset float64 `yaml:"offset"`
	// Interactive reports whether the overlay may receive input.
	Interactive bool `yaml:"interactive"`
}

// OverlayVisibility computes an overlay's state with linear ramps.
//
// Opacity ramps 0→1 over [Start, Start+RampMargin] and 1→0 over
// [End-RampMargin, End]; it is 0 outside the window. Windows narrower than
// twice the margin never reach full opacity. Interactive is true exactly when
// p is inside the window, regardless of the ramps.
func OverlayVisibility(p float64, w StageWindow) Visibility {
	return VisibilityWithEase(p, w, nil)
}

// VisibilityWithEase is OverlayVisibility with a custom easing function
// applied to both ramps. fn must map 0→0 and 1→1 over its duration. A nil fn
// ramps linearly in float64, so opacity is strictly monotonic inside each
// ramp.
func VisibilityWithEase(p float64, w StageWindow, fn ease.TweenFunc) Visibility {
	if math.IsNaN(p) || p < w.Start {
		return Visibility{Offset: OverlayTravel}
	}
	if p > w.End {
		return Visibility{Offset: -OverlayTravel}
	}

	in := ramp(p-w.Start, fn)
	out := ramp(w.End-p, fn)

	v := Visibility{Opacity: math.Min(in, out), Interactive: true}
	mid := (w.Start + w.End) / 2
	switch {
	case in < 1 && p <= mid:
		v.Offset = OverlayTravel * (1 - in)
	case out < 1:
		v.Offset = -OverlayTravel * (1 - out)
	}
	return v
}

// ramp maps a distance into the window onto [0, 1] across RampMargin.
// gween eases in float32, which collapses nearby inputs, so the linear case
// stays in float64.
func ramp(d float64, fn ease.TweenFunc) float64 {
	if d <= 0 {
		return 0
	}
	if d >= RampMargin {
		return 1
	}
	if fn == nil {
		return d / RampMargin
	}
	return clamp01(float64(fn(float32(d), 0, 1, RampMargin)))
}

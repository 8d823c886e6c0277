package scrollseq

import "errors"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default text color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBackground is the page background behind the canvas and the loading
// placeholder.
var ColorBackground = Color{R: 0.035, G: 0.039, B: 0.059, A: 1}

// ColorAccent is used by the loading spinner and the navbar hover pill.
var ColorAccent = Color{R: 0.486, G: 0.227, B: 0.929, A: 1}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Dimensions is a viewport or surface size in pixels. The zero value means
// "not yet measured".
type Dimensions struct {
	Width, Height float64
}

// Known reports whether both sides have been measured.
func (d Dimensions) Known() bool {
	return d.Width > 0 && d.Height > 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// State is the lifecycle state of a mounted ScrollSequence.
type State uint8

const (
	StateLoading State = iota // frames are still settling; a placeholder is shown
	StateReady                // every load attempt settled; frames are drawn
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// TextAlign controls horizontal placement of an overlay layer.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // anchored to the left padding
	TextAlignCenter                  // centered horizontally
	TextAlignRight                   // anchored to the right padding
)

// ParseTextAlign maps "left", "center" and "right" to a TextAlign.
// Unknown values fall back to TextAlignCenter.
func ParseTextAlign(s string) TextAlign {
	switch s {
	case "left":
		return TextAlignLeft
	case "right":
		return TextAlignRight
	default:
		return TextAlignCenter
	}
}

var (
	// ErrInvalidSchedule is returned for breakpoint lists that are empty,
	// out of range, or not non-decreasing in both axes.
	ErrInvalidSchedule = errors.New("scrollseq: invalid breakpoint schedule")
	// ErrInvalidStage is returned for stage windows that violate
	// 0 <= start < end <= 1.
	ErrInvalidStage = errors.New("scrollseq: invalid stage window")
	// ErrAlreadyMounted is returned by Mount on a mounted sequence.
	ErrAlreadyMounted = errors.New("scrollseq: sequence already mounted")
	// ErrDisposed is returned by Mount after Unmount.
	ErrDisposed = errors.New("scrollseq: sequence disposed")
	// ErrCacheClosed is returned by FrameCache.Start after Close.
	ErrCacheClosed = errors.New("scrollseq: frame cache closed")
)

package scrollseq

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestScrollerClamp(t *testing.T) {
	var s Scroller
	s.SetMax(100)

	tests := []struct {
		name string
		op   func()
		want float64
	}{
		{"by", func() { s.ScrollBy(30) }, 30},
		{"by past max", func() { s.ScrollBy(500) }, 100},
		{"by past zero", func() { s.ScrollBy(-500) }, 0},
		{"jump", func() { s.Jump(70) }, 70},
		{"jump negative", func() { s.Jump(-1) }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.op()
			if s.Offset() != tt.want {
				t.Errorf("Offset = %v, want %v", s.Offset(), tt.want)
			}
		})
	}
}

func TestScrollerSetMaxClampsOffset(t *testing.T) {
	var s Scroller
	s.SetMax(100)
	s.Jump(90)
	s.SetMax(50)
	if s.Offset() != 50 {
		t.Errorf("Offset = %v, want 50", s.Offset())
	}
	s.SetMax(-10)
	if s.Max() != 0 || s.Offset() != 0 {
		t.Errorf("Max = %v, Offset = %v, want 0 and 0", s.Max(), s.Offset())
	}
}

func TestScrollerScrollTo(t *testing.T) {
	var s Scroller
	s.SetMax(1000)
	s.ScrollTo(400, 1, ease.Linear)
	if !s.Animating() {
		t.Fatal("expected animation")
	}
	s.update(0.5)
	if !approx(s.Offset(), 200, 0.01) {
		t.Errorf("halfway Offset = %v, want 200", s.Offset())
	}
	s.update(0.6)
	if s.Animating() || s.Offset() != 400 {
		t.Errorf("after finish: animating=%v offset=%v", s.Animating(), s.Offset())
	}
}

func TestScrollerScrollToInterrupted(t *testing.T) {
	var s Scroller
	s.SetMax(1000)
	s.ScrollTo(800, 1, nil)
	s.update(0.2)
	s.ScrollBy(10)
	if s.Animating() {
		t.Error("ScrollBy should cancel the animation")
	}
	s.ScrollTo(5000, 0, nil)
	if s.Offset() != 1000 {
		t.Errorf("zero-duration ScrollTo should jump to the clamped target, got %v", s.Offset())
	}
}

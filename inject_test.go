package scrollseq

import "testing"

func newTestHost() *EbitenHost {
	h := NewEbitenHost(PageLayout{ContainerScreens: 3})
	h.DisableInput = true
	h.SetViewport(800, 500) // scroll extent 1000
	return h
}

func TestEbitenHostViewport(t *testing.T) {
	h := newTestHost()
	if h.Viewport() != (Dimensions{Width: 800, Height: 500}) {
		t.Errorf("Viewport = %+v", h.Viewport())
	}
	if h.Scroller().Max() != 1000 {
		t.Errorf("Max = %v, want 1000", h.Scroller().Max())
	}
}

func TestInjectScroll(t *testing.T) {
	h := newTestHost()
	var seen []float64
	h.OnScroll(func(o float64) { seen = append(seen, o) })

	h.InjectScroll(250)
	h.InjectScroll(5000)
	if h.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", h.Pending())
	}
	h.Update(0)
	if h.ScrollOffset() != 250 {
		t.Errorf("offset = %v, want 250", h.ScrollOffset())
	}
	h.Update(0)
	if h.ScrollOffset() != 1000 {
		t.Errorf("offset = %v, want the clamped 1000", h.ScrollOffset())
	}
	if len(seen) != 2 || h.Pending() != 0 {
		t.Errorf("seen = %v, pending = %d", seen, h.Pending())
	}
}

func TestInjectProgressUsesCurrentViewport(t *testing.T) {
	h := newTestHost()
	h.InjectResize(800, 1000) // extent 2000
	h.InjectProgress(0.5)
	h.Update(0)
	if h.Viewport().Height != 1000 {
		t.Fatalf("Viewport = %+v", h.Viewport())
	}
	h.Update(0)
	if h.ScrollOffset() != 1000 {
		t.Errorf("offset = %v, want 1000", h.ScrollOffset())
	}
}

func TestInjectSweep(t *testing.T) {
	h := newTestHost()
	h.InjectSweep(0, 1, 5)
	if h.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", h.Pending())
	}
	want := []float64{0, 250, 500, 750, 1000}
	for i, w := range want {
		h.Update(0)
		if !approx(h.ScrollOffset(), w, 1e-9) {
			t.Errorf("step %d offset = %v, want %v", i, h.ScrollOffset(), w)
		}
	}

	h.InjectSweep(1, 0, 1)
	if h.Pending() != 2 {
		t.Errorf("a sweep has at least two steps, got %d", h.Pending())
	}
}

func TestScrollToProgressAnimates(t *testing.T) {
	h := newTestHost()
	h.ScrollToProgress(1, 0.5)
	h.Update(0.25)
	mid := h.ScrollOffset()
	if mid <= 0 || mid >= 1000 {
		t.Errorf("mid-animation offset = %v", mid)
	}
	h.Update(0.5)
	if h.ScrollOffset() != 1000 {
		t.Errorf("final offset = %v, want 1000", h.ScrollOffset())
	}
}

func TestEbitenHostDrivesSequence(t *testing.T) {
	surf := &recordingSurface{}
	seq, err := NewScrollSequence(SequenceOptions{
		Paths:    testPaths(5),
		Loader:   sizedLoader(4, 4),
		Schedule: LinearSchedule(5),
		Surface:  surf,
		Layout:   PageLayout{ContainerScreens: 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer seq.Unmount()
	h := newTestHost()
	mountAndSettle(t, seq, h)
	seq.Render()

	h.InjectProgress(1)
	h.Update(0)
	if seq.FrameIndex() != 4 {
		t.Errorf("FrameIndex = %d, want 4", seq.FrameIndex())
	}
	if !seq.Render() || surf.lastDraw(t).frame.Index != 4 {
		t.Error("expected a draw of the last frame")
	}
}

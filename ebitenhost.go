package scrollseq

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

const (
	defaultWheelStep = 80.0
	defaultLineStep  = 40.0
)

// EbitenHost is a Host driven by Ebitengine: window layout supplies the
// viewport, and the mouse wheel and keyboard move a clamped scroll offset.
// Queued synthetic events (see InjectScroll and friends) replace real input
// for the frames they are consumed on.
type EbitenHost struct {
	*Hub

	// Layout places the tracked container; it bounds the scroll extent.
	Layout PageLayout
	// WheelStep is the offset change per wheel notch. Zero means 80.
	WheelStep float64
	// DisableInput ignores wheel and keyboard (injected events still apply).
	DisableInput bool

	scroller    Scroller
	injectQueue []syntheticEvent
}

// NewEbitenHost returns a host with an unmeasured viewport.
func NewEbitenHost(layout PageLayout) *EbitenHost {
	if layout == (PageLayout{}) {
		layout = DefaultLayout
	}
	return &EbitenHost{Hub: NewHub(Dimensions{}), Layout: layout}
}

// Scroller exposes the underlying scroll state.
func (h *EbitenHost) Scroller() *Scroller {
	return &h.scroller
}

// SetViewport is called from the game's Layout with the logical screen size.
func (h *EbitenHost) SetViewport(w, ht int) {
	vp := Dimensions{Width: float64(w), Height: float64(ht)}
	if vp == h.Viewport() {
		return
	}
	h.scroller.SetMax(h.Layout.ScrollExtent(vp.Height))
	h.Hub.Resize(vp)
	h.Hub.Scroll(h.scroller.Offset())
}

// ScrollToProgress animates to the offset where the container reaches p.
func (h *EbitenHost) ScrollToProgress(p float64, duration float32) {
	h.scroller.ScrollTo(h.Layout.Offset(p, h.Viewport().Height), duration, ease.InOutCubic)
}

// Update consumes one injected event or reads real input, advances any
// scroll animation by dt seconds, and publishes the resulting offset.
func (h *EbitenHost) Update(dt float32) {
	if !h.processInjected() && !h.DisableInput {
		h.readInput()
	}
	h.scroller.update(dt)
	h.Hub.Scroll(h.scroller.Offset())
}

func (h *EbitenHost) readInput() {
	step := h.WheelStep
	if step == 0 {
		step = defaultWheelStep
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		h.scroller.ScrollBy(-dy * step)
	}

	page := h.Viewport().Height * 0.9
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		h.scroller.ScrollTo(0, 0.4, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		h.scroller.ScrollTo(h.scroller.Max(), 0.4, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		h.scroller.ScrollTo(h.scroller.Offset()+page, 0.3, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		h.scroller.ScrollTo(h.scroller.Offset()-page, 0.3, ease.OutCubic)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		h.scroller.ScrollBy(defaultLineStep / 4)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		h.scroller.ScrollBy(-defaultLineStep / 4)
	}
}

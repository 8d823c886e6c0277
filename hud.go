package scrollseq

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugHUD displays FPS/TPS and the sequence's progress, frame and state in
// the bottom-left corner. The text is refreshed every ~0.5 seconds.
type DebugHUD struct {
	seq   *ScrollSequence
	img   *ebiten.Image
	since float64
	text  string
}

// NewDebugHUD creates a HUD reporting on seq.
func NewDebugHUD(seq *ScrollSequence) *DebugHUD {
	// 200x80 is enough for five lines of DebugPrint text.
	return &DebugHUD{seq: seq, img: ebiten.NewImage(200, 80), since: 0.5}
}

// Text returns the last rendered HUD text.
func (h *DebugHUD) Text() string {
	return h.text
}

// Update refreshes the HUD text when half a second has passed.
func (h *DebugHUD) Update(dt float64) {
	h.since += dt
	if h.since < 0.5 {
		return
	}
	h.since = 0
	h.text = h.compose(ebiten.ActualFPS(), ebiten.ActualTPS())

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.text)
}

func (h *DebugHUD) compose(fps, tps float64) string {
	st := h.seq.Stats()
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nprogress: %.3f\nframe: %d/%d\nstate: %s (%d/%d)",
		fps, tps, h.seq.Progress(), h.seq.FrameIndex(), st.Frames-1,
		h.seq.State(), st.Settled, st.Frames)
}

// Draw places the HUD image onto dst.
func (h *DebugHUD) Draw(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, float64(dst.Bounds().Dy()-h.img.Bounds().Dy()-8))
	dst.DrawImage(h.img, op)
}

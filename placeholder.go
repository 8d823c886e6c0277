package scrollseq

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	spinnerDots   = 8
	spinnerRadius = 24.0
	spinnerDot    = 4.0
	spinnerSpeed  = 1.25 // turns per second
)

// Placeholder is the loading indicator drawn while a sequence is still
// settling its frames: a ring of fading dots and a caption with the load
// count.
type Placeholder struct {
	Caption string
	fonts   *Fonts
	angle   float64
}

// NewPlaceholder returns a placeholder captioned "Loading".
func NewPlaceholder(fonts *Fonts) *Placeholder {
	return &Placeholder{Caption: "Loading", fonts: fonts}
}

// Update advances the spinner by dt seconds.
func (p *Placeholder) Update(dt float32) {
	p.angle = math.Mod(p.angle+float64(dt)*spinnerSpeed*2*math.Pi, 2*math.Pi)
}

// Angle returns the spinner's head angle in radians.
func (p *Placeholder) Angle() float64 {
	return p.angle
}

// CaptionText returns the caption for settled of total loads.
func (p *Placeholder) CaptionText(settled, total int) string {
	if total <= 0 {
		return p.Caption
	}
	return fmt.Sprintf("%s %d/%d", p.Caption, settled, total)
}

// Draw renders the spinner centered in vp with the load counts below it.
func (p *Placeholder) Draw(dst *ebiten.Image, vp Dimensions, settled, total int) {
	if !vp.Known() {
		return
	}
	cx, cy := vp.Width/2, vp.Height/2
	for i := 0; i < spinnerDots; i++ {
		a := p.angle - float64(i)*2*math.Pi/spinnerDots
		x := cx + math.Cos(a)*spinnerRadius
		y := cy + math.Sin(a)*spinnerRadius
		c := withAlpha(ColorAccent, 1-float64(i)/spinnerDots)
		vector.DrawFilledCircle(dst, float32(x), float32(y), spinnerDot, c.toRGBA(), true)
	}
	if p.fonts == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy+spinnerRadius+2*spinnerDot+8)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(ColorWhite.toRGBA())
	op.ColorScale.ScaleAlpha(0.7)
	text.Draw(dst, p.CaptionText(settled, total), p.fonts.Small.Face(), op)
}

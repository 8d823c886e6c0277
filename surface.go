package scrollseq

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// CanvasSurface is a persistent offscreen Ebitengine image used as the
// sequence canvas. Frames are scaled on the GPU with linear filtering.
type CanvasSurface struct {
	image *ebiten.Image
	w, h  int
}

// NewCanvasSurface creates a canvas of the given size. A zero size defers
// allocation until the first Resize.
func NewCanvasSurface(w, h int) *CanvasSurface {
	cs := &CanvasSurface{}
	if w > 0 && h > 0 {
		cs.Resize(w, h)
	}
	return cs
}

// Image returns the underlying *ebiten.Image, or nil before the first Resize.
func (cs *CanvasSurface) Image() *ebiten.Image {
	return cs.image
}

// Size returns the canvas size in pixels.
func (cs *CanvasSurface) Size() (int, int) {
	return cs.w, cs.h
}

// Resize deallocates the old image and creates a new one at the given size.
func (cs *CanvasSurface) Resize(width, height int) {
	if width == cs.w && height == cs.h && cs.image != nil {
		return
	}
	if cs.image != nil {
		cs.image.Deallocate()
		cs.image = nil
	}
	cs.w, cs.h = width, height
	if width > 0 && height > 0 {
		cs.image = ebiten.NewImage(width, height)
	}
}

// Clear fills the canvas with transparent black.
func (cs *CanvasSurface) Clear() {
	if cs.image != nil {
		cs.image.Clear()
	}
}

// DrawFrame draws f scaled into (x, y, w, h).
func (cs *CanvasSurface) DrawFrame(f *Frame, x, y, w, h float64) {
	if cs.image == nil || f == nil {
		return
	}
	tex := f.Texture()
	if tex == nil {
		return
	}
	b := tex.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	cs.image.DrawImage(tex, &op)
}

// DrawTo composites the canvas onto dst at the origin.
func (cs *CanvasSurface) DrawTo(dst *ebiten.Image) {
	if cs.image == nil {
		return
	}
	dst.DrawImage(cs.image, nil)
}

// Dispose deallocates the underlying image. The surface should not be used
// after calling Dispose.
func (cs *CanvasSurface) Dispose() {
	if cs.image != nil {
		cs.image.Deallocate()
		cs.image = nil
	}
	cs.w, cs.h = 0, 0
}

// toRGBA converts a Color to a premultiplied color.Color.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package scrollseq

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// RasterSurface is a CPU Surface backed by an *image.RGBA. It is used for
// headless export and for pixel-level tests of the compositor.
type RasterSurface struct {
	img *image.RGBA
	// Scaler resamples frames. Nil means xdraw.CatmullRom.
	Scaler xdraw.Transformer
}

// NewRasterSurface creates a raster surface of the given size.
func NewRasterSurface(w, h int) *RasterSurface {
	rs := &RasterSurface{}
	rs.Resize(w, h)
	return rs
}

// Image returns the backing image.
func (rs *RasterSurface) Image() *image.RGBA {
	return rs.img
}

// Size returns the backing buffer size.
func (rs *RasterSurface) Size() (int, int) {
	if rs.img == nil {
		return 0, 0
	}
	b := rs.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing image.
func (rs *RasterSurface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rs.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Clear fills the surface with transparent black.
func (rs *RasterSurface) Clear() {
	if rs.img == nil {
		return
	}
	xdraw.Draw(rs.img, rs.img.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
}

// Fill paints the whole surface with c.
func (rs *RasterSurface) Fill(c Color) {
	if rs.img == nil {
		return
	}
	xdraw.Draw(rs.img, rs.img.Bounds(), &image.Uniform{C: color.Color(c.toRGBA())}, image.Point{}, xdraw.Src)
}

// Flatten returns a copy of the surface composited over an opaque bg, the
// way the page paints its background behind the canvas.
func (rs *RasterSurface) Flatten(bg Color) *image.RGBA {
	if rs.img == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	out := image.NewRGBA(rs.img.Bounds())
	xdraw.Draw(out, out.Bounds(), &image.Uniform{C: color.Color(bg.toRGBA())}, image.Point{}, xdraw.Src)
	xdraw.Draw(out, out.Bounds(), rs.img, rs.img.Bounds().Min, xdraw.Over)
	return out
}

// DrawFrame resamples f into (x, y, w, h). Sub-pixel origins are honoured
// through an affine transform rather than rounded to a destination rectangle.
func (rs *RasterSurface) DrawFrame(f *Frame, x, y, w, h float64) {
	if rs.img == nil || f == nil || f.Image == nil {
		return
	}
	sb := f.Image.Bounds()
	if sb.Empty() || w <= 0 || h <= 0 || math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	sx := w / float64(sb.Dx())
	sy := h / float64(sb.Dy())
	m := f64.Aff3{
		sx, 0, x - float64(sb.Min.X)*sx,
		0, sy, y - float64(sb.Min.Y)*sy,
	}
	scaler := rs.Scaler
	if scaler == nil {
		scaler = xdraw.CatmullRom
	}
	scaler.Transform(rs.img, m, f.Image, sb, xdraw.Over, nil)
}

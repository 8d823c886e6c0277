package scrollseq

import "math"

// Surface is a resizable 2D raster the compositor draws frames onto.
type Surface interface {
	// Resize reallocates the backing buffer. Content is discarded.
	Resize(width, height int)
	// Size returns the backing buffer size.
	Size() (width, height int)
	// Clear fills the whole surface with transparent black.
	Clear()
	// DrawFrame draws f scaled into the rectangle (x, y, w, h). The
	// rectangle may extend past the surface edges; overflow is cropped.
	DrawFrame(f *Frame, x, y, w, h float64)
}

// CoverTransform returns the uniform scale and top-left origin that make a
// frame of the given natural size fully cover the viewport, centered, with
// overflow cropped. ok is false when either size is unknown.
func CoverTransform(frameW, frameH int, vp Dimensions) (scale, x, y float64, ok bool) {
	if frameW <= 0 || frameH <= 0 || !vp.Known() {
		return 0, 0, 0, false
	}
	fw, fh := float64(frameW), float64(frameH)
	scale = math.Max(vp.Width/fw, vp.Height/fh)
	x = vp.Width/2 - fw*scale/2
	y = vp.Height/2 - fh*scale/2
	return scale, x, y, true
}

// Compositor draws frames onto a Surface with a cover fit. It resizes the
// surface only when the viewport changes.
type Compositor struct {
	surface  Surface
	viewport Dimensions
	draws    int
}

// NewCompositor returns a compositor over surface.
func NewCompositor(surface Surface) *Compositor {
	return &Compositor{surface: surface}
}

// Surface returns the drawing surface.
func (c *Compositor) Surface() Surface {
	return c.surface
}

// Viewport returns the viewport the surface was last sized for.
func (c *Compositor) Viewport() Dimensions {
	return c.viewport
}

// Draws returns how many frames have been drawn.
func (c *Compositor) Draws() int {
	return c.draws
}

// SetViewport resizes the surface if vp differs from the current viewport.
// It reports whether a resize happened. Unknown dimensions are ignored.
func (c *Compositor) SetViewport(vp Dimensions) bool {
	if !vp.Known() || vp == c.viewport {
		return false
	}
	c.viewport = vp
	c.surface.Resize(int(math.Ceil(vp.Width)), int(math.Ceil(vp.Height)))
	return true
}

// Draw clears the surface and draws frame with a cover fit for vp. It skips
// (returns false) when the viewport is not yet measured or frame is absent.
func (c *Compositor) Draw(frame *Frame, vp Dimensions) bool {
	if frame == nil || !vp.Known() {
		return false
	}
	fw, fh := frame.Size()
	scale, x, y, ok := CoverTransform(fw, fh, vp)
	if !ok {
		return false
	}
	c.SetViewport(vp)
	c.surface.Clear()
	c.surface.DrawFrame(frame, x, y, float64(fw)*scale, float64(fh)*scale)
	c.draws++
	return true
}

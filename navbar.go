package scrollseq

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

const (
	navHeight        = 72.0
	navSidePadding   = 24.0
	navLinkPadX      = 24.0
	navLinkPadY      = 8.0
	navLinkGap       = 16.0
	navEnterDuration = 0.8
	navEnterOffset   = -20.0
	navScrollTime    = 0.6
)

// NavLink is a navigation target expressed as container progress.
type NavLink struct {
	Label    string
	Progress float64
}

// DefaultNavLinks are the section links of the reference page.
func DefaultNavLinks() []NavLink {
	return []NavLink{
		{Label: "About me", Progress: 0},
		{Label: "Skills", Progress: 0.8},
		{Label: "Projects", Progress: 1},
	}
}

// ProgressScroller is anything that can smooth-scroll to a container
// progress value. EbitenHost implements it.
type ProgressScroller interface {
	ScrollToProgress(p float64, duration float32)
}

// Navbar is the fixed bar at the top of the page: a brand label on the left
// and a pill of section links in the middle. It fades and slides in once,
// then routes link clicks to a ProgressScroller.
type Navbar struct {
	Brand string
	Links []NavLink

	fonts    *Fonts
	scroller ProgressScroller

	opacity  float64
	y        float64
	entrance *TweenGroup
	hover    int
}

// NewNavbar creates a navbar and starts its entrance animation. A nil links
// slice means DefaultNavLinks.
func NewNavbar(brand string, links []NavLink, fonts *Fonts, scroller ProgressScroller) *Navbar {
	if links == nil {
		links = DefaultNavLinks()
	}
	n := &Navbar{Brand: brand, Links: links, fonts: fonts, scroller: scroller, hover: -1}
	n.entrance = NewTween(navEnterDuration, ease.OutCubic,
		TweenField{Field: &n.opacity, From: 0, To: 1},
		TweenField{Field: &n.y, From: navEnterOffset, To: 0},
	)
	return n
}

// Opacity returns the current entrance opacity.
func (n *Navbar) Opacity() float64 { return n.opacity }

// OffsetY returns the current entrance slide offset.
func (n *Navbar) OffsetY() float64 { return n.y }

// Entered reports whether the entrance animation has finished.
func (n *Navbar) Entered() bool { return n.entrance.Done }

// Hovered returns the index of the link under the cursor, or -1.
func (n *Navbar) Hovered() int { return n.hover }

// LinkRects returns the hit rectangles of the links for a viewport width,
// ignoring the entrance offset.
func (n *Navbar) LinkRects(viewportWidth float64) []Rect {
	rects := make([]Rect, len(n.Links))
	lh := n.fonts.Body.LineHeight()
	h := lh + 2*navLinkPadY
	var total float64
	for i, l := range n.Links {
		w, _ := n.fonts.Body.Measure(l.Label)
		rects[i] = Rect{Width: w + 2*navLinkPadX, Height: h}
		total += rects[i].Width
	}
	if len(rects) > 1 {
		total += navLinkGap * float64(len(rects)-1)
	}
	x := viewportWidth/2 - total/2
	y := navHeight/2 - h/2
	for i := range rects {
		rects[i].X = x
		rects[i].Y = y
		x += rects[i].Width + navLinkGap
	}
	return rects
}

// LinkAt returns the index of the link containing (x, y), or -1.
func (n *Navbar) LinkAt(x, y, viewportWidth float64) int {
	for i, r := range n.LinkRects(viewportWidth) {
		if r.Contains(x, y-n.y) {
			return i
		}
	}
	return -1
}

// Click activates the link under (x, y), if any, and reports whether one was
// hit. Clicks are ignored until the bar is visible.
func (n *Navbar) Click(x, y, viewportWidth float64) bool {
	if n.opacity <= 0 {
		return false
	}
	i := n.LinkAt(x, y, viewportWidth)
	if i < 0 {
		return false
	}
	if n.scroller != nil {
		n.scroller.ScrollToProgress(n.Links[i].Progress, navScrollTime)
	}
	return true
}

// Update advances the entrance by dt seconds and handles the mouse. It
// reports whether a click landed on a link.
func (n *Navbar) Update(dt float32, vp Dimensions) bool {
	n.entrance.Update(dt)
	if !vp.Known() {
		return false
	}
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	n.hover = n.LinkAt(x, y, vp.Width)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return n.Click(x, y, vp.Width)
	}
	return false
}

// Draw renders the bar onto dst.
func (n *Navbar) Draw(dst *ebiten.Image, vp Dimensions) {
	if n.opacity <= 0 || !vp.Known() {
		return
	}
	alpha := float32(n.opacity)

	brand := &text.DrawOptions{}
	brand.GeoM.Translate(navSidePadding, navHeight/2-n.fonts.Body.LineHeight()/2+n.y)
	brand.ColorScale.ScaleWithColor(ColorWhite.toRGBA())
	brand.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, n.Brand, n.fonts.Body.Face(), brand)

	rects := n.LinkRects(vp.Width)
	if len(rects) == 0 {
		return
	}
	first, last := rects[0], rects[len(rects)-1]
	pillH := first.Height + 2*navLinkPadY
	pill := Rect{
		X:      first.X - navLinkPadX,
		Y:      first.Y - navLinkPadY + n.y,
		Width:  last.X + last.Width - first.X + 2*navLinkPadX,
		Height: pillH,
	}
	fillRect(dst, pill, withAlpha(Color{1, 1, 1, 0.1}, n.opacity))

	for i, r := range rects {
		r.Y += n.y
		if i == n.hover {
			fillRect(dst, r, withAlpha(ColorAccent, 0.8*n.opacity))
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(r.X+r.Width/2, r.Y+navLinkPadY)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(ColorWhite.toRGBA())
		op.ColorScale.ScaleAlpha(alpha)
		text.Draw(dst, n.Links[i].Label, n.fonts.Body.Face(), op)
	}
}

func withAlpha(c Color, a float64) Color {
	c.A *= a
	return c
}

// fillRect draws a solid rectangle.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), true)
}

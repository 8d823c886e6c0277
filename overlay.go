package scrollseq

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"
)

const (
	overlayPadding  = 80.0
	overlayBodyWrap = 448.0
	overlayGap      = 16.0
	itemPadX        = 16.0
	itemPadY        = 6.0
	itemGap         = 12.0
)

// OverlayLayer is a block of text shown over the canvas during one stage
// window.
type OverlayLayer struct {
	Name  string
	Stage StageWindow
	// Title uses the display face; Heading the heading face; Body the body
	// face, word-wrapped. Any of them may be empty.
	Title   string
	Heading string
	Body    string
	Align   TextAlign
	// Items are selectable chips laid out in rows below the text. They only
	// take clicks while the layer is interactive.
	Items []string
	// Ease shapes both opacity ramps. Nil means linear.
	Ease ease.TweenFunc
}

// DefaultSkills are the chips of the skills panel.
var DefaultSkills = []string{
	"HTML", "CSS", "JavaScript", "Python", "C Programming",
	"React", "Node.js", "Motoko", "PostgreSQL", "MySQL",
}

// DefaultProjects are the project titles listed by the skills panel.
var DefaultProjects = []string{
	"Bluseques", "Smart classroom", "Parking-today", "Portfolio", "Slice2025",
}

// DefaultOverlays is the narrative of the reference page, one layer per
// DefaultStages window.
func DefaultOverlays() []OverlayLayer {
	return []OverlayLayer{
		{
			Name:  "welcome",
			Stage: DefaultStages[0],
			Title: "Welcome",
			Align: TextAlignCenter,
		},
		{
			Name:    "about",
			Stage:   DefaultStages[1],
			Heading: "ABOUT ME",
			Body:    "I am a passionate Electronics and Communication Engineering student from Loyola-ICAM College of Engineering and Technology.",
			Align:   TextAlignLeft,
		},
		{
			Name:  "paragraph",
			Stage: DefaultStages[2],
			Body:  "I specialize in embedded systems, IoT and full-stack development.",
			Align: TextAlignRight,
		},
		{
			Name:    "skills",
			Stage:   DefaultStages[3],
			Heading: "SKILLS",
			Body:    "Projects: " + strings.Join(DefaultProjects, ", "),
			Align:   TextAlignCenter,
			Items:   append([]string(nil), DefaultSkills...),
		},
	}
}

// StagesOf extracts the stage windows of layers, in order.
func StagesOf(layers []OverlayLayer) []StageWindow {
	out := make([]StageWindow, len(layers))
	for i, l := range layers {
		out[i] = l.Stage
	}
	return out
}

// Visibility returns the layer's state at progress p.
func (l OverlayLayer) Visibility(p float64) Visibility {
	return VisibilityWithEase(p, l.Stage, l.Ease)
}

// overlayLine is one laid-out line of an overlay.
type overlayLine struct {
	text string
	font *Font
}

func (l OverlayLayer) wrapWidth(vp Dimensions) float64 {
	if vp.Width-2*overlayPadding < overlayBodyWrap {
		return vp.Width - 2*overlayPadding
	}
	return overlayBodyWrap
}

func (l OverlayLayer) lines(fonts *Fonts, vp Dimensions) []overlayLine {
	var out []overlayLine
	if l.Title != "" {
		out = append(out, overlayLine{l.Title, fonts.Display})
	}
	if l.Heading != "" {
		out = append(out, overlayLine{l.Heading, fonts.Heading})
	}
	if l.Body != "" {
		for _, ln := range fonts.Body.Wrap(l.Body, l.wrapWidth(vp)) {
			out = append(out, overlayLine{ln, fonts.Body})
		}
	}
	return out
}

func textSize(lines []overlayLine) (w, h float64) {
	for i, ln := range lines {
		lw, _ := ln.font.Measure(ln.text)
		if lw > w {
			w = lw
		}
		h += ln.font.LineHeight()
		if i > 0 && ln.font != lines[i-1].font {
			h += overlayGap
		}
	}
	return w, h
}

// itemRows flows the item chips into rows no wider than the wrap width. The
// returned rects are relative to the top-left of the chip block, with each
// row starting at x = 0.
func (l OverlayLayer) itemRows(fonts *Fonts, vp Dimensions) (rows [][]Rect, w, h float64) {
	if len(l.Items) == 0 {
		return nil, 0, 0
	}
	maxW := l.wrapWidth(vp)
	chipH := fonts.Body.LineHeight() + 2*itemPadY
	var row []Rect
	var x float64
	for _, item := range l.Items {
		iw, _ := fonts.Body.Measure(item)
		r := Rect{Width: iw + 2*itemPadX, Height: chipH}
		if len(row) > 0 && x+r.Width > maxW {
			rows = append(rows, row)
			row, x = nil, 0
			h += chipH + itemGap
		}
		r.X, r.Y = x, h
		row = append(row, r)
		x += r.Width + itemGap
		if rw := x - itemGap; rw > w {
			w = rw
		}
	}
	rows = append(rows, row)
	return rows, w, h + chipH
}

// Bounds returns the screen rectangle the layer occupies at rest (zero
// offset) in viewport vp.
func (l OverlayLayer) Bounds(fonts *Fonts, vp Dimensions) Rect {
	lines := l.lines(fonts, vp)
	w, h := textSize(lines)
	if _, iw, ih := l.itemRows(fonts, vp); ih > 0 {
		if len(lines) > 0 {
			h += overlayGap
		}
		h += ih
		w = max(w, iw)
	}
	var x float64
	switch l.Align {
	case TextAlignLeft:
		x = overlayPadding
	case TextAlignRight:
		x = vp.Width - overlayPadding - w
	default:
		x = vp.Width/2 - w/2
	}
	return Rect{X: x, Y: vp.Height/2 - h/2, Width: w, Height: h}
}

// ItemRects returns the screen rectangles of the item chips at rest, in item
// order. Each row is aligned like the text.
func (l OverlayLayer) ItemRects(fonts *Fonts, vp Dimensions) []Rect {
	rows, _, ih := l.itemRows(fonts, vp)
	if ih == 0 {
		return nil
	}
	bounds := l.Bounds(fonts, vp)
	top := bounds.Y + bounds.Height - ih
	out := make([]Rect, 0, len(l.Items))
	for _, row := range rows {
		last := row[len(row)-1]
		rw := last.X + last.Width
		var x float64
		switch l.Align {
		case TextAlignLeft:
			x = bounds.X
		case TextAlignRight:
			x = bounds.X + bounds.Width - rw
		default:
			x = vp.Width/2 - rw/2
		}
		for _, r := range row {
			r.X += x
			r.Y += top
			out = append(out, r)
		}
	}
	return out
}

// ItemAt returns the index of the item under (x, y) for a layer drawn with
// vis, or -1. Layers that are not interactive never report a hit, whatever
// their opacity.
func (l OverlayLayer) ItemAt(x, y float64, fonts *Fonts, vp Dimensions, vis Visibility) int {
	if !vis.Interactive || !vp.Known() {
		return -1
	}
	for i, r := range l.ItemRects(fonts, vp) {
		if r.Contains(x, y-vis.Offset) {
			return i
		}
	}
	return -1
}

// Draw renders the layer onto dst with the given visibility. Fully
// transparent layers are skipped.
func (l OverlayLayer) Draw(dst *ebiten.Image, fonts *Fonts, vp Dimensions, vis Visibility) {
	l.DrawSelected(dst, fonts, vp, vis, -1)
}

// DrawSelected is Draw with the item at index selected highlighted.
func (l OverlayLayer) DrawSelected(dst *ebiten.Image, fonts *Fonts, vp Dimensions, vis Visibility, selected int) {
	if vis.Opacity <= 0 || !vp.Known() {
		return
	}
	bounds := l.Bounds(fonts, vp)
	y := bounds.Y + vis.Offset
	lines := l.lines(fonts, vp)
	for i, ln := range lines {
		if i > 0 && ln.font != lines[i-1].font {
			y += overlayGap
		}
		op := &text.DrawOptions{}
		switch l.Align {
		case TextAlignLeft:
			op.GeoM.Translate(bounds.X, y)
			op.PrimaryAlign = text.AlignStart
		case TextAlignRight:
			op.GeoM.Translate(bounds.X+bounds.Width, y)
			op.PrimaryAlign = text.AlignEnd
		default:
			op.GeoM.Translate(vp.Width/2, y)
			op.PrimaryAlign = text.AlignCenter
		}
		op.ColorScale.ScaleWithColor(ColorWhite.toRGBA())
		op.ColorScale.ScaleAlpha(float32(vis.Opacity))
		text.Draw(dst, ln.text, ln.font.Face(), op)
		y += ln.font.LineHeight()
	}

	for i, r := range l.ItemRects(fonts, vp) {
		r.Y += vis.Offset
		fill := withAlpha(Color{1, 1, 1, 0.1}, vis.Opacity)
		if i == selected {
			fill = withAlpha(ColorAccent, 0.8*vis.Opacity)
		}
		fillRect(dst, r, fill)
		op := &text.DrawOptions{}
		op.GeoM.Translate(r.X+r.Width/2, r.Y+itemPadY)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(ColorWhite.toRGBA())
		op.ColorScale.ScaleAlpha(float32(vis.Opacity))
		text.Draw(dst, l.Items[i], fonts.Body.Face(), op)
	}
}

// OverlayHit identifies an item chip of one overlay layer.
type OverlayHit struct {
	Layer int
	Item  int
}

// HitOverlay finds the item under (x, y) among layers at progress p. Layers
// are searched topmost first, and only interactive layers take part. ok is
// false when nothing was hit.
func HitOverlay(layers []OverlayLayer, fonts *Fonts, vp Dimensions, p, x, y float64) (hit OverlayHit, ok bool) {
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if item := l.ItemAt(x, y, fonts, vp, l.Visibility(p)); item >= 0 {
			return OverlayHit{Layer: i, Item: item}, true
		}
	}
	return OverlayHit{}, false
}

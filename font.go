package scrollseq

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 for TrueType rendering at one size.
type Font struct {
	face *text.GoTextFace
	lh   float64
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("scrollseq: parse font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// Face returns the underlying face for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

// LineHeight returns the distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Measure returns the width and height of s laid out with this font.
func (f *Font) Measure(s string) (w, h float64) {
	return text.Measure(s, f.face, f.lh)
}

// Wrap breaks s into lines no wider than maxWidth. A single word wider than
// maxWidth gets a line of its own.
func (f *Font) Wrap(s string, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if text.Advance(candidate, f.face) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// Fonts is the set of faces used by the page chrome and overlays.
type Fonts struct {
	Display *Font // overlay titles
	Heading *Font // overlay headings and the navbar brand
	Body    *Font // overlay body text and navbar links
	Small   *Font // loading caption and the debug HUD
}

// DefaultFonts loads the Go fonts shipped with golang.org/x/image.
func DefaultFonts() (*Fonts, error) {
	display, err := LoadFont(gobold.TTF, 96)
	if err != nil {
		return nil, err
	}
	heading, err := LoadFont(gobold.TTF, 48)
	if err != nil {
		return nil, err
	}
	body, err := LoadFont(goregular.TTF, 20)
	if err != nil {
		return nil, err
	}
	small, err := LoadFont(goregular.TTF, 12)
	if err != nil {
		return nil, err
	}
	return &Fonts{Display: display, Heading: heading, Body: body, Small: small}, nil
}

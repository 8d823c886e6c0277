package scrollseq

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultIntroHold is how long the intro loader shows before the sequence is
// mounted.
const DefaultIntroHold = 2 * time.Second

// PageOptions configures a Page.
type PageOptions struct {
	// Sequence configures the frame sequence. Its Surface and Stages are
	// ignored: the page owns the canvas and derives stages from Overlays.
	Sequence SequenceOptions
	// Overlays are the text layers. Nil means DefaultOverlays.
	Overlays []OverlayLayer
	// Brand is the navbar label. Empty hides the navbar.
	Brand    string
	NavLinks []NavLink
	// IntroHold delays mounting. Negative disables the hold; zero means
	// DefaultIntroHold.
	IntroHold time.Duration
	// Fonts used by overlays, navbar and placeholder. Nil loads DefaultFonts.
	Fonts *Fonts
	// ShowHUD enables the debug HUD.
	ShowHUD bool
	// ScreenshotDir is where Screenshot writes. Empty means "screenshots".
	ScreenshotDir string
}

// Page is an ebiten.Game that hosts a ScrollSequence with its overlays,
// navbar and loading placeholder.
type Page struct {
	// ScreenshotDir is the directory PNG screenshots are written to.
	ScreenshotDir string

	ctx         context.Context
	host        *EbitenHost
	seq         *ScrollSequence
	fonts       *Fonts
	overlays    []OverlayLayer
	navbar      *Navbar
	placeholder *Placeholder
	hud         *DebugHUD
	runner      *TestRunner

	hold            float64
	screenshotQueue []string
	closed          bool
	selection       OverlayHit
	selected        bool
}

// NewPage builds a page. The sequence is mounted on ctx once the intro hold
// has elapsed; cancelling ctx aborts outstanding loads.
func NewPage(ctx context.Context, opts PageOptions) (*Page, error) {
	overlays := opts.Overlays
	if overlays == nil {
		overlays = DefaultOverlays()
	}
	fonts := opts.Fonts
	if fonts == nil {
		var err error
		if fonts, err = DefaultFonts(); err != nil {
			return nil, err
		}
	}

	seqOpts := opts.Sequence
	seqOpts.Surface = nil
	seqOpts.Stages = StagesOf(overlays)
	seq, err := NewScrollSequence(seqOpts)
	if err != nil {
		return nil, err
	}

	hold := opts.IntroHold
	switch {
	case hold == 0:
		hold = DefaultIntroHold
	case hold < 0:
		hold = 0
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}

	p := &Page{
		ScreenshotDir: dir,
		ctx:           ctx,
		host:          NewEbitenHost(seq.Layout()),
		seq:           seq,
		fonts:         fonts,
		overlays:      overlays,
		placeholder:   NewPlaceholder(fonts),
		hold:          hold.Seconds(),
	}
	if opts.Brand != "" {
		p.navbar = NewNavbar(opts.Brand, opts.NavLinks, fonts, p.host)
	}
	if opts.ShowHUD {
		p.hud = NewDebugHUD(seq)
	}
	return p, nil
}

// Sequence returns the page's sequence.
func (p *Page) Sequence() *ScrollSequence { return p.seq }

// Host returns the page's host.
func (p *Page) Host() *EbitenHost { return p.host }

// SetTestRunner attaches a TestRunner. It is stepped from Update once the
// sequence is ready.
func (p *Page) SetTestRunner(r *TestRunner) { p.runner = r }

// SetDebugMode forwards to the sequence.
func (p *Page) SetDebugMode(enabled bool) { p.seq.SetDebugMode(enabled) }

// InjectScroll forwards to the host.
func (p *Page) InjectScroll(offset float64) { p.host.InjectScroll(offset) }

// InjectProgress forwards to the host.
func (p *Page) InjectProgress(v float64) { p.host.InjectProgress(v) }

// InjectSweep forwards to the host.
func (p *Page) InjectSweep(from, to float64, frames int) { p.host.InjectSweep(from, to, frames) }

// InjectResize forwards to the host.
func (p *Page) InjectResize(w, h int) { p.host.InjectResize(w, h) }

// Pending forwards to the host.
func (p *Page) Pending() int { return p.host.Pending() }

// Update implements ebiten.Game. The game ends once the page is closed or
// its context is cancelled.
func (p *Page) Update() error {
	if p.closed || p.ctx.Err() != nil {
		p.Close()
		return ebiten.Termination
	}
	dt := float32(1) / float32(ebiten.TPS())
	return p.tick(dt)
}

func (p *Page) tick(dt float32) error {
	if !p.seq.Mounted() {
		p.hold -= float64(dt)
		if p.hold <= 0 {
			if err := p.seq.Mount(p.ctx, p.host); err != nil {
				return err
			}
		}
	}
	p.host.Update(dt)
	p.seq.Update()
	p.placeholder.Update(dt)
	clicked := false
	if p.navbar != nil {
		clicked = p.navbar.Update(dt, p.host.Viewport())
	}
	if !clicked && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p.ClickOverlay(float64(mx), float64(my))
	}
	if p.hud != nil {
		p.hud.Update(float64(dt))
	}
	if p.runner != nil && p.seq.State() == StateReady {
		p.runner.step(p)
	}
	return nil
}

// ClickOverlay selects the overlay item under (x, y) and reports whether one
// was hit. Only layers that are interactive at the current progress take the
// click, and nothing is hit until the sequence is ready.
func (p *Page) ClickOverlay(x, y float64) bool {
	if p.seq.State() != StateReady {
		return false
	}
	hit, ok := HitOverlay(p.overlays, p.fonts, p.host.Viewport(), p.seq.Progress(), x, y)
	if !ok {
		return false
	}
	p.selection, p.selected = hit, true
	if p.seq.debug {
		logf("click: %s item %q", p.overlays[hit.Layer].Name, p.overlays[hit.Layer].Items[hit.Item])
	}
	return true
}

// Selection returns the last clicked overlay item.
func (p *Page) Selection() (OverlayHit, bool) { return p.selection, p.selected }

// Draw implements ebiten.Game.
func (p *Page) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground.toRGBA())
	vp := p.host.Viewport()

	if p.seq.State() == StateReady {
		p.seq.Render()
		p.seq.Canvas().DrawTo(screen)
		progress := p.seq.Progress()
		for i, l := range p.overlays {
			sel := -1
			if p.selected && p.selection.Layer == i {
				sel = p.selection.Item
			}
			l.DrawSelected(screen, p.fonts, vp, l.Visibility(progress), sel)
		}
	} else {
		cache := p.seq.Cache()
		p.placeholder.Draw(screen, vp, cache.Settled(), cache.Len())
	}

	if p.navbar != nil {
		p.navbar.Draw(screen, vp)
	}
	if p.hud != nil {
		p.hud.Draw(screen)
	}
	p.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The outside size becomes the viewport.
func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	p.host.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close unmounts the sequence. The next Update ends the game loop.
func (p *Page) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.seq.Unmount()
}

package scrollseq

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS turns on the page's debug HUD.
	ShowFPS bool
}

// Run opens a resizable window and runs page until the window closes. The
// sequence is unmounted before Run returns.
func Run(page *Page, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	if cfg.ShowFPS && page.hud == nil {
		page.hud = NewDebugHUD(page.seq)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer page.Close()
	return ebiten.RunGame(page)
}

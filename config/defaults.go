package config

import (
	"github.com/phanxgames/scrollseq"
	"github.com/phanxgames/scrollseq/contact"
)

// Default returns the reference deployment: 40 JPEG frames under frames/,
// the staged schedule, the narrative overlays and skills panel, and a
// container four viewports tall.
func Default() *Config {
	cfg := &Config{
		Frames: scrollseq.FrameSpec{
			Base:   "frames",
			Prefix: "frame-",
			Ext:    "jpg",
			Count:  scrollseq.DefaultFrameCount,
		},
		Schedule: ScheduleConfig{Kind: ScheduleStaged},
		Layout:   scrollseq.DefaultLayout,
		Nav:      NavConfig{Brand: "Yobin"},
		Window: WindowConfig{
			Title:  "Yobin | Portfolio",
			Width:  1280,
			Height: 720,
		},
		Contact:       ContactConfig{Endpoint: contact.DefaultEndpoint},
		IntroHold:     scrollseq.DefaultIntroHold,
		ScreenshotDir: "screenshots",
	}
	for _, l := range scrollseq.DefaultOverlays() {
		cfg.Overlays = append(cfg.Overlays, OverlayConfig{
			Name:    l.Name,
			Start:   l.Stage.Start,
			End:     l.Stage.End,
			Title:   l.Title,
			Heading: l.Heading,
			Body:    l.Body,
			Align:   alignName(l.Align),
			Items:   l.Items,
		})
	}
	for _, l := range scrollseq.DefaultNavLinks() {
		cfg.Nav.Links = append(cfg.Nav.Links, LinkConfig{Label: l.Label, Progress: l.Progress})
	}
	return cfg
}

func alignName(a scrollseq.TextAlign) string {
	switch a {
	case scrollseq.TextAlignLeft:
		return "left"
	case scrollseq.TextAlignRight:
		return "right"
	default:
		return "center"
	}
}

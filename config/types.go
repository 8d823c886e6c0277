package config

import (
	"time"

	"github.com/phanxgames/scrollseq"
)

// ScheduleKind selects how the frame schedule is built.
type ScheduleKind string

const (
	ScheduleStaged ScheduleKind = "staged" // five-point staged schedule
	ScheduleLinear ScheduleKind = "linear" // first frame to last across [0, 1]
	ScheduleCustom ScheduleKind = "custom" // explicit breakpoints
)

// Config is the top-level scrollseq configuration, corresponding to
// scrollseq.yml.
type Config struct {
	Frames        scrollseq.FrameSpec  `yaml:"frames" koanf:"frames"`
	Schedule      ScheduleConfig       `yaml:"schedule" koanf:"schedule"`
	Layout        scrollseq.PageLayout `yaml:"layout" koanf:"layout"`
	Overlays      []OverlayConfig      `yaml:"overlays" koanf:"overlays"`
	Nav           NavConfig            `yaml:"nav" koanf:"nav"`
	Window        WindowConfig         `yaml:"window" koanf:"window"`
	Contact       ContactConfig        `yaml:"contact" koanf:"contact"`
	IntroHold     time.Duration        `yaml:"intro_hold" koanf:"intro_hold"`
	Concurrency   int                  `yaml:"concurrency" koanf:"concurrency"`
	ScreenshotDir string               `yaml:"screenshot_dir" koanf:"screenshot_dir"`
}

// ScheduleConfig describes the progress to frame mapping. Points are only
// read for the custom kind.
type ScheduleConfig struct {
	Kind   ScheduleKind       `yaml:"kind" koanf:"kind"`
	Points []BreakpointConfig `yaml:"points,omitempty" koanf:"points"`
}

// BreakpointConfig is one custom schedule breakpoint.
type BreakpointConfig struct {
	Progress float64 `yaml:"progress" koanf:"progress"`
	Frame    float64 `yaml:"frame" koanf:"frame"`
}

// OverlayConfig is one overlay text layer.
type OverlayConfig struct {
	Name    string   `yaml:"name" koanf:"name"`
	Start   float64  `yaml:"start" koanf:"start"`
	End     float64  `yaml:"end" koanf:"end"`
	Title   string   `yaml:"title,omitempty" koanf:"title"`
	Heading string   `yaml:"heading,omitempty" koanf:"heading"`
	Body    string   `yaml:"body,omitempty" koanf:"body"`
	Align   string   `yaml:"align" koanf:"align"`
	Items   []string `yaml:"items,omitempty" koanf:"items"`
}

// NavConfig configures the navbar. An empty brand hides it.
type NavConfig struct {
	Brand string       `yaml:"brand" koanf:"brand"`
	Links []LinkConfig `yaml:"links" koanf:"links"`
}

// LinkConfig is one navbar link.
type LinkConfig struct {
	Label    string  `yaml:"label" koanf:"label"`
	Progress float64 `yaml:"progress" koanf:"progress"`
}

// WindowConfig holds window settings for the run command.
type WindowConfig struct {
	Title   string `yaml:"title" koanf:"title"`
	Width   int    `yaml:"width" koanf:"width"`
	Height  int    `yaml:"height" koanf:"height"`
	ShowFPS bool   `yaml:"show_fps" koanf:"show_fps"`
}

// ContactConfig holds EmailJS credentials. They usually come from the
// environment or a .env file rather than the YAML file.
type ContactConfig struct {
	ServiceID  string `yaml:"service_id" koanf:"service_id"`
	TemplateID string `yaml:"template_id" koanf:"template_id"`
	PublicKey  string `yaml:"public_key" koanf:"public_key"`
	Endpoint   string `yaml:"endpoint,omitempty" koanf:"endpoint"`
}

// Configured reports whether all three credentials are present.
func (c ContactConfig) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

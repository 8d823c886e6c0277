package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/phanxgames/scrollseq"
	"github.com/phanxgames/scrollseq/contact"
)

// EnvPrefix prefixes environment overrides. Nested keys are separated by a
// double underscore: SCROLLSEQ_FRAMES__COUNT -> frames.count.
const EnvPrefix = "SCROLLSEQ_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SCROLLSEQ_*). A .env file in the working
// directory is loaded into the environment first; variables already set win.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	k := koanf.New(".")

	// Start from defaults. They go through koanf too so that lists in the
	// file replace the default lists instead of merging into them.
	if err := k.Load(defaultsProvider{}, yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Load YAML file if it exists.
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// Overlay environment variables: SCROLLSEQ_WINDOW__WIDTH -> window.width.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.applyEmailJSEnv()
	return cfg, nil
}

// defaultsProvider is a koanf.Provider serving Default() as YAML.
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) {
	return yamlv3.Marshal(Default())
}

func (defaultsProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("defaults provider does not support this method")
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// applyEmailJSEnv fills missing contact credentials from the conventional
// EMAILJS_* variables, or their NEXT_PUBLIC_EMAILJS_* spellings.
func (c *Config) applyEmailJSEnv() {
	fill := func(dst *string, name string) {
		for _, key := range []string{"EMAILJS_" + name, "NEXT_PUBLIC_EMAILJS_" + name} {
			if *dst == "" {
				*dst = os.Getenv(key)
			}
		}
	}
	fill(&c.Contact.ServiceID, "SERVICE_ID")
	fill(&c.Contact.TemplateID, "TEMPLATE_ID")
	fill(&c.Contact.PublicKey, "PUBLIC_KEY")
	if c.Contact.Endpoint == "" {
		c.Contact.Endpoint = contact.DefaultEndpoint
	}
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validAligns is the set of recognized overlay alignments.
var validAligns = map[string]bool{
	"left":   true,
	"center": true,
	"right":  true,
	"":       true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Frames.Count <= 0 {
		return fmt.Errorf("frames.count must be positive")
	}
	if _, err := c.BuildSchedule(); err != nil {
		return err
	}
	if c.Layout.ContainerScreens < 0 {
		return fmt.Errorf("layout.container_screens must be non-negative")
	}
	prev := 0.0
	for i, o := range c.Overlays {
		w := scrollseq.StageWindow{Start: o.Start, End: o.End}
		if err := w.Validate(); err != nil {
			return fmt.Errorf("overlays[%d] (%s): %w", i, o.Name, err)
		}
		if o.Start < prev {
			return fmt.Errorf("overlays[%d] (%s): start %.3f precedes the previous stage", i, o.Name, o.Start)
		}
		prev = o.Start
		if !validAligns[o.Align] {
			return fmt.Errorf("overlays[%d] (%s): invalid align %q: must be one of left, center, right", i, o.Name, o.Align)
		}
	}
	for i, l := range c.Nav.Links {
		if l.Progress < 0 || l.Progress > 1 {
			return fmt.Errorf("nav.links[%d] (%s): progress must be within [0, 1]", i, l.Label)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be non-negative")
	}
	return nil
}

// BuildSchedule builds the frame schedule for Frames.Count.
func (c *Config) BuildSchedule() (*scrollseq.Schedule, error) {
	n := c.Frames.Count
	switch c.Schedule.Kind {
	case ScheduleStaged, "":
		return scrollseq.NewSchedule(n, scrollseq.StagedBreakpoints(n))
	case ScheduleLinear:
		return scrollseq.NewSchedule(n, []scrollseq.Breakpoint{{Progress: 0, Frame: 0}, {Progress: 1, Frame: float64(n - 1)}})
	case ScheduleCustom:
		points := make([]scrollseq.Breakpoint, len(c.Schedule.Points))
		for i, p := range c.Schedule.Points {
			points[i] = scrollseq.Breakpoint{Progress: p.Progress, Frame: p.Frame}
		}
		return scrollseq.NewSchedule(n, points)
	default:
		return nil, fmt.Errorf("invalid schedule.kind %q: must be one of staged, linear, custom", c.Schedule.Kind)
	}
}

// OverlayLayers converts the overlay configuration.
func (c *Config) OverlayLayers() []scrollseq.OverlayLayer {
	out := make([]scrollseq.OverlayLayer, len(c.Overlays))
	for i, o := range c.Overlays {
		out[i] = scrollseq.OverlayLayer{
			Name:    o.Name,
			Stage:   scrollseq.StageWindow{Start: o.Start, End: o.End},
			Title:   o.Title,
			Heading: o.Heading,
			Body:    o.Body,
			Align:   scrollseq.ParseTextAlign(o.Align),
			Items:   append([]string(nil), o.Items...),
		}
	}
	return out
}

// NavLinks converts the navbar links.
func (c *Config) NavLinks() []scrollseq.NavLink {
	out := make([]scrollseq.NavLink, len(c.Nav.Links))
	for i, l := range c.Nav.Links {
		out[i] = scrollseq.NavLink{Label: l.Label, Progress: l.Progress}
	}
	return out
}

// SequenceOptions returns sequence options that load frames with loader.
func (c *Config) SequenceOptions(loader scrollseq.Loader) (scrollseq.SequenceOptions, error) {
	schedule, err := c.BuildSchedule()
	if err != nil {
		return scrollseq.SequenceOptions{}, err
	}
	return scrollseq.SequenceOptions{
		Frames:      c.Frames,
		Loader:      loader,
		Schedule:    schedule,
		Stages:      scrollseq.StagesOf(c.OverlayLayers()),
		Layout:      c.Layout,
		Concurrency: c.Concurrency,
	}, nil
}

// PageOptions returns the page options for the run command.
func (c *Config) PageOptions(loader scrollseq.Loader) (scrollseq.PageOptions, error) {
	seq, err := c.SequenceOptions(loader)
	if err != nil {
		return scrollseq.PageOptions{}, err
	}
	hold := c.IntroHold
	if hold == 0 {
		hold = -1
	}
	return scrollseq.PageOptions{
		Sequence:      seq,
		Overlays:      c.OverlayLayers(),
		Brand:         c.Nav.Brand,
		NavLinks:      c.NavLinks(),
		IntroHold:     hold,
		ShowHUD:       c.Window.ShowFPS,
		ScreenshotDir: c.ScreenshotDir,
	}, nil
}

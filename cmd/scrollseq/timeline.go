package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/scrollseq/config"
)

var (
	timelineSteps int
	timelineOut   string
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the progress to frame and overlay mapping as YAML",
	Long:  `Samples the configured schedule and overlay stages at evenly spaced progress values. No frames are loaded.`,
	RunE:  runTimeline,
}

func init() {
	timelineCmd.Flags().IntVar(&timelineSteps, "steps", 21, "number of samples across [0, 1]")
	timelineCmd.Flags().StringVarP(&timelineOut, "out", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(timelineCmd)
}

type timelineSample struct {
	Progress float64         `yaml:"progress"`
	Frame    int             `yaml:"frame"`
	Exact    float64         `yaml:"exact"`
	Overlays []overlaySample `yaml:"overlays"`
}

type overlaySample struct {
	Name        string  `yaml:"name"`
	Opacity     float64 `yaml:"opacity"`
	Offset      float64 `yaml:"offset"`
	Interactive bool    `yaml:"interactive"`
}

func runTimeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	samples, err := buildTimeline(cfg, timelineSteps)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(samples)
	if err != nil {
		return fmt.Errorf("marshalling timeline: %w", err)
	}
	if timelineOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(timelineOut, data, 0644); err != nil {
		return fmt.Errorf("writing timeline to %s: %w", timelineOut, err)
	}
	return nil
}

func buildTimeline(cfg *config.Config, steps int) ([]timelineSample, error) {
	schedule, err := cfg.BuildSchedule()
	if err != nil {
		return nil, err
	}
	layers := cfg.OverlayLayers()
	var out []timelineSample
	for _, p := range progressSteps(steps) {
		s := timelineSample{
			Progress: p,
			Frame:    schedule.FrameIndex(p),
			Exact:    schedule.Interpolate(p),
		}
		for _, l := range layers {
			v := l.Visibility(p)
			s.Overlays = append(s.Overlays, overlaySample{
				Name:        l.Name,
				Opacity:     v.Opacity,
				Offset:      v.Offset,
				Interactive: v.Interactive,
			})
		}
		out = append(out, s)
	}
	return out, nil
}

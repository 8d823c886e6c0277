package main

import (
	"testing"

	"github.com/phanxgames/scrollseq/config"
)

func TestProgressSteps(t *testing.T) {
	tests := []struct {
		n    int
		want []float64
	}{
		{0, []float64{0}},
		{1, []float64{0}},
		{2, []float64{0, 1}},
		{5, []float64{0, 0.25, 0.5, 0.75, 1}},
	}
	for _, tt := range tests {
		got := progressSteps(tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("progressSteps(%d) = %v, want %v", tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("progressSteps(%d)[%d] = %v, want %v", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestBuildTimeline(t *testing.T) {
	samples, err := buildTimeline(config.Default(), 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 6 {
		t.Fatalf("len = %d, want 6", len(samples))
	}
	wantFrames := []int{0, 13, 26, 39, 39, 39}
	for i, s := range samples {
		if s.Frame != wantFrames[i] {
			t.Errorf("sample %d (p=%.2f) frame = %d, want %d", i, s.Progress, s.Frame, wantFrames[i])
		}
		if len(s.Overlays) != 4 {
			t.Fatalf("sample %d has %d overlays", i, len(s.Overlays))
		}
	}
	// At p=1 every layer is transparent, and only the skills panel, whose
	// window closes at 1, still takes input.
	last := samples[5]
	for _, o := range last.Overlays {
		if o.Opacity != 0 || o.Interactive != (o.Name == "skills") {
			t.Errorf("overlay %s at p=1: %+v", o.Name, o)
		}
	}
}

func TestBuildTimelineInvalidSchedule(t *testing.T) {
	cfg := config.Default()
	cfg.Schedule.Kind = "bogus"
	if _, err := buildTimeline(cfg, 3); err == nil {
		t.Error("expected error")
	}
}

package main

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/phanxgames/scrollseq"
)

func TestRenderAtProgressSkipsFailedFrame(t *testing.T) {
	paths := scrollseq.FramePaths(scrollseq.FrameSpec{Base: "frames", Count: 3})
	loader := scrollseq.LoaderFunc(func(ctx context.Context, path string) (image.Image, error) {
		if path == paths[1] {
			return nil, errors.New("decode failed")
		}
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
		return img, nil
	})
	seq, err := scrollseq.NewScrollSequence(scrollseq.SequenceOptions{
		Paths:    paths,
		Loader:   loader,
		Schedule: scrollseq.LinearSchedule(3),
		Surface:  scrollseq.NewRasterSurface(4, 4),
		Layout:   scrollseq.PageLayout{ContainerScreens: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer seq.Unmount()

	hub := scrollseq.NewHub(scrollseq.Dimensions{Width: 4, Height: 4})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := settle(ctx, seq, hub, nil); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		p     float64
		ok    bool
		drawn int
	}{
		{0, true, 0},
		{0.5, false, 0},
		{1, true, 2},
	}
	for _, tt := range tests {
		if got := renderAtProgress(seq, hub, tt.p); got != tt.ok {
			t.Errorf("p=%v: renderAtProgress = %v, want %v", tt.p, got, tt.ok)
		}
		if seq.DrawnFrame() != tt.drawn {
			t.Errorf("p=%v: drawn frame = %d, want %d", tt.p, seq.DrawnFrame(), tt.drawn)
		}
	}
}

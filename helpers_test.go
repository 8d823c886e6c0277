package scrollseq

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"
)

// recordingSurface is a Surface that records every call.
type recordingSurface struct {
	w, h    int
	resizes int
	clears  int
	draws   []recordedDraw
}

type recordedDraw struct {
	frame      *Frame
	x, y, w, h float64
}

func (s *recordingSurface) Resize(w, h int)  { s.w, s.h = w, h; s.resizes++ }
func (s *recordingSurface) Size() (int, int) { return s.w, s.h }
func (s *recordingSurface) Clear()           { s.clears++ }
func (s *recordingSurface) DrawFrame(f *Frame, x, y, w, h float64) {
	s.draws = append(s.draws, recordedDraw{f, x, y, w, h})
}

func (s *recordingSurface) lastDraw(t *testing.T) recordedDraw {
	t.Helper()
	if len(s.draws) == 0 {
		t.Fatal("no draws recorded")
	}
	return s.draws[len(s.draws)-1]
}

// solidImage returns a w x h image filled with c.
func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// sizedLoader returns a solid image of the given size for every path except
// the ones listed in fail.
func sizedLoader(w, h int, fail ...string) Loader {
	failing := map[string]bool{}
	for _, p := range fail {
		failing[p] = true
	}
	return LoaderFunc(func(ctx context.Context, path string) (image.Image, error) {
		if failing[path] {
			return nil, fmt.Errorf("missing %s", path)
		}
		return solidImage(w, h, color.RGBA{R: 255, A: 255}), nil
	})
}

// gatedLoader blocks every load until release is called.
type gatedLoader struct {
	gate    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	started int
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{gate: make(chan struct{})}
}

func (l *gatedLoader) release() { l.once.Do(func() { close(l.gate) }) }

func (l *gatedLoader) Load(ctx context.Context, path string) (image.Image, error) {
	l.mu.Lock()
	l.started++
	l.mu.Unlock()
	select {
	case <-l.gate:
		return solidImage(4, 4, color.RGBA{G: 255, A: 255}), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// testPaths returns n frame identifiers.
func testPaths(n int) []string {
	return FramePaths(FrameSpec{Base: "frames", Count: n})
}

// settleCache waits for every load goroutine and applies the results.
func settleCache(t *testing.T, c *FrameCache) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	c.Poll()
}

func approx(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

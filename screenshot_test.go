package scrollseq

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-scroll", "after-scroll"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnapshotName(t *testing.T) {
	tests := []struct {
		label string
		p     float64
		want  string
	}{
		{"progress", 0.25, "progress_0.2500.png"},
		{"progress", 1, "progress_1.0000.png"},
		{"my shot", 0, "my_shot_0.0000.png"},
	}
	for _, tt := range tests {
		if got := SnapshotName(tt.label, tt.p); got != tt.want {
			t.Errorf("SnapshotName(%q, %v) = %q, want %q", tt.label, tt.p, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	p := &Page{}
	p.Screenshot("a")
	p.Screenshot("b")
	p.Screenshot("c")
	if len(p.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(p.screenshotQueue))
	}
	if p.screenshotQueue[0] != "a" || p.screenshotQueue[1] != "b" || p.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", p.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-transparent, premultiplied
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := solidImage(3, 2, color.RGBA{B: 255, A: 255})
	if err := WritePNG(path, src); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds = %v", got.Bounds())
	}

	if err := WritePNG(filepath.Join(t.TempDir(), "missing", "x.png"), src); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

package scrollseq

import (
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultFrameCount is the frame count of the reference deployment.
const DefaultFrameCount = 40

// FrameSpec describes how frame resource identifiers are generated.
type FrameSpec struct {
	// Base is the directory or URL prefix the frames live under.
	Base string `koanf:"base" yaml:"base"`
	// Prefix precedes the zero-padded index. Empty means "frame-".
	Prefix string `koanf:"prefix" yaml:"prefix"`
	// Ext is the file extension without the dot. Empty means "jpg".
	Ext string `koanf:"ext" yaml:"ext"`
	// Count is the number of frames, indexed from 1.
	Count int `koanf:"count" yaml:"count"`
}

// FramePath returns the resource identifier for the 1-based index i:
// <base>/<prefix><3-digit index>.<ext>.
func (fs FrameSpec) FramePath(i int) string {
	prefix := fs.Prefix
	if prefix == "" {
		prefix = "frame-"
	}
	ext := strings.TrimPrefix(fs.Ext, ".")
	if ext == "" {
		ext = "jpg"
	}
	name := fmt.Sprintf("%s%03d.%s", prefix, i, ext)
	if fs.Base == "" {
		return name
	}
	return path.Join(fs.Base, name)
}

// FramePaths returns the full ordered sequence of resource identifiers.
// Slot k of the result holds the identifier for index k+1.
func FramePaths(fs FrameSpec) []string {
	if fs.Count <= 0 {
		return nil
	}
	paths := make([]string, fs.Count)
	for i := range paths {
		paths[i] = fs.FramePath(i + 1)
	}
	return paths
}

// Frame is one decoded still of the sequence. A Frame is created once when its
// load succeeds and is never mutated afterward, apart from the lazily
// uploaded GPU texture.
type Frame struct {
	// Index is the 0-based slot in the sequence.
	Index int
	// Path is the resource identifier the frame was loaded from.
	Path string
	// Image is the decoded pixel data.
	Image image.Image

	texture *ebiten.Image
}

// NewFrame wraps a decoded image.
func NewFrame(index int, path string, img image.Image) *Frame {
	return &Frame{Index: index, Path: path, Image: img}
}

// Size returns the natural width and height of the frame in pixels.
func (f *Frame) Size() (w, h int) {
	if f == nil || f.Image == nil {
		return 0, 0
	}
	b := f.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Texture returns the frame as an *ebiten.Image, uploading it on first use.
// Call only from the goroutine running the game loop.
func (f *Frame) Texture() *ebiten.Image {
	if f.texture == nil && f.Image != nil {
		if img, ok := f.Image.(*ebiten.Image); ok {
			f.texture = img
		} else {
			f.texture = ebiten.NewImageFromImage(f.Image)
		}
	}
	return f.texture
}

// dispose releases the GPU texture if one was uploaded.
func (f *Frame) dispose() {
	if f.texture != nil {
		if f.texture != f.Image {
			f.texture.Deallocate()
		}
		f.texture = nil
	}
}

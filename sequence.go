package scrollseq

import (
	"context"
	"fmt"
	"time"
)

// PageLayout places the tracked container on the page.
type PageLayout struct {
	// ContainerTop is the container's top edge in page pixels.
	ContainerTop float64 `koanf:"container_top" yaml:"container_top"`
	// ContainerScreens is the container height in viewport heights. The
	// reference page uses 4 (a 400vh section with a sticky canvas).
	ContainerScreens float64 `koanf:"container_screens" yaml:"container_screens"`
}

// DefaultLayout is the reference page layout.
var DefaultLayout = PageLayout{ContainerScreens: 4}

// ContainerHeight returns the container height for a viewport height.
func (l PageLayout) ContainerHeight(viewportHeight float64) float64 {
	screens := l.ContainerScreens
	if screens <= 0 {
		screens = DefaultLayout.ContainerScreens
	}
	return screens * viewportHeight
}

// Progress converts a scroll offset into container progress.
func (l PageLayout) Progress(offset, viewportHeight float64) float64 {
	return ScrollProgress(offset, l.ContainerTop, l.ContainerHeight(viewportHeight), viewportHeight)
}

// Offset is the inverse of Progress: the scroll offset at which progress p is
// reached.
func (l PageLayout) Offset(p, viewportHeight float64) float64 {
	span := l.ContainerHeight(viewportHeight) - viewportHeight
	if span < 0 {
		span = 0
	}
	return l.ContainerTop + clamp01(p)*span
}

// ScrollExtent returns the maximum scroll offset of a page that ends with the
// container.
func (l PageLayout) ScrollExtent(viewportHeight float64) float64 {
	return l.Offset(1, viewportHeight)
}

// SequenceOptions configures a ScrollSequence.
type SequenceOptions struct {
	// Paths lists the frame resource identifiers. When nil, Frames generates
	// them.
	Paths []string
	// Frames generates Paths when Paths is nil.
	Frames FrameSpec
	// Loader decodes frames. Required.
	Loader Loader
	// Schedule maps progress to frames. Nil means StagedSchedule.
	Schedule *Schedule
	// Stages are the overlay windows, in layer order. Nil means DefaultStages.
	Stages []StageWindow
	// Surface is drawn onto. Nil means a CanvasSurface owned (and disposed) by
	// the sequence.
	Surface Surface
	// Layout places the tracked container. Zero means DefaultLayout.
	Layout PageLayout
	// Concurrency bounds parallel loads. Zero picks a default.
	Concurrency int
}

// DefaultStages are the overlay windows of the reference page: welcome,
// about, paragraph, then the skills panel. Progress 0.6 to 0.8 holds the last
// frame with no overlay.
var DefaultStages = []StageWindow{
	{Start: 0, End: 0.2},
	{Start: 0.2, End: 0.4},
	{Start: 0.4, End: 0.6},
	{Start: 0.8, End: 1},
}

// ScrollSequence is the scroll-driven frame renderer. It preloads a frame
// sequence, follows a Host's viewport and scroll offset, and redraws its
// surface when the progress-derived frame changes.
//
// All methods must be called from one goroutine (the game loop). Host
// callbacks are expected on the same goroutine.
type ScrollSequence struct {
	cache      *FrameCache
	schedule   *Schedule
	compositor *Compositor
	stages     []StageWindow
	layout     PageLayout
	ownSurface *CanvasSurface

	host   Host
	subs   [2]Subscription
	cancel context.CancelFunc

	state    State
	viewport Dimensions
	offset   float64
	progress float64
	frame    int

	drawnFrame int
	dirty      bool
	mounted    bool
	disposed   bool
	debug      bool

	stats         drawStats
	onStateChange []func(State)
}

// NewScrollSequence builds an unmounted sequence. It returns an error if the
// schedule does not match the frame count or a stage window is invalid.
func NewScrollSequence(opts SequenceOptions) (*ScrollSequence, error) {
	paths := opts.Paths
	if paths == nil {
		paths = FramePaths(opts.Frames)
	}
	n := len(paths)

	schedule := opts.Schedule
	if schedule == nil {
		if n == 0 {
			return nil, ErrInvalidSchedule
		}
		schedule = StagedSchedule(n)
	}
	if schedule.Frames() != n {
		return nil, fmt.Errorf("%w: schedule addresses %d frames, sequence has %d", ErrInvalidSchedule, schedule.Frames(), n)
	}

	stages := opts.Stages
	if stages == nil {
		stages = DefaultStages
	}
	for _, w := range stages {
		if err := w.Validate(); err != nil {
			return nil, err
		}
	}

	layout := opts.Layout
	if layout == (PageLayout{}) {
		layout = DefaultLayout
	}

	s := &ScrollSequence{
		cache:      NewFrameCache(paths, opts.Loader, CacheOptions{Concurrency: opts.Concurrency}),
		schedule:   schedule,
		stages:     append([]StageWindow(nil), stages...),
		layout:     layout,
		drawnFrame: -1,
	}
	surface := opts.Surface
	if surface == nil {
		s.ownSurface = NewCanvasSurface(0, 0)
		surface = s.ownSurface
	}
	s.compositor = NewCompositor(surface)
	s.cache.OnReady(s.handleReady)
	return s, nil
}

// Mount subscribes to host, reads its current viewport and offset, and starts
// loading frames. The sequence stays in StateLoading until every load has
// settled.
func (s *ScrollSequence) Mount(ctx context.Context, host Host) error {
	if s.disposed {
		return ErrDisposed
	}
	if s.mounted {
		return ErrAlreadyMounted
	}
	s.mounted = true
	s.host = host

	ctx, s.cancel = context.WithCancel(ctx)
	s.subs[0] = host.OnResize(s.handleResize)
	s.subs[1] = host.OnScroll(s.handleScroll)

	s.viewport = host.Viewport()
	s.offset = host.ScrollOffset()
	s.recompute()

	return s.cache.Start(ctx)
}

// Unmount detaches from the host, cancels outstanding loads, and releases the
// frames. No draw and no cache callback happens afterward. The sequence cannot
// be mounted again.
func (s *ScrollSequence) Unmount() {
	if s.disposed {
		return
	}
	s.disposed = true
	for i := range s.subs {
		s.subs[i].Remove()
		s.subs[i] = Subscription{}
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.cache.Close()
	if s.ownSurface != nil {
		s.ownSurface.Dispose()
	}
	s.mounted = false
	s.host = nil
	s.dirty = false
	s.onStateChange = nil
}

// OnStateChange registers fn to run when the sequence becomes ready.
func (s *ScrollSequence) OnStateChange(fn func(State)) {
	s.onStateChange = append(s.onStateChange, fn)
}

// SetDebugMode enables per-draw stats on the log output.
func (s *ScrollSequence) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update applies finished frame loads. Call once per tick.
func (s *ScrollSequence) Update() {
	if !s.mounted || s.disposed {
		return
	}
	s.cache.Poll()
}

// Render redraws the surface if the frame or viewport changed since the last
// draw. It draws at most once per call and reports whether it drew. Nothing is
// drawn while loading, before the viewport is measured, or when the frame for
// the current index failed to load.
func (s *ScrollSequence) Render() bool {
	if !s.mounted || s.disposed || s.state != StateReady {
		return false
	}
	if s.compositor.SetViewport(s.viewport) {
		s.dirty = true
	}
	if !s.dirty {
		return false
	}
	s.dirty = false

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	if !s.compositor.Draw(s.cache.Get(s.frame), s.viewport) {
		s.stats.skipped++
		return false
	}
	s.drawnFrame = s.frame
	s.stats.draws++
	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.debugLog()
	}
	s.stats.events = 0
	return true
}

func (s *ScrollSequence) handleReady() {
	s.state = StateReady
	s.dirty = true
	for _, fn := range s.onStateChange {
		fn(StateReady)
	}
}

func (s *ScrollSequence) handleResize(vp Dimensions) {
	if s.disposed {
		return
	}
	s.viewport = vp
	s.stats.events++
	s.recompute()
}

func (s *ScrollSequence) handleScroll(offset float64) {
	if s.disposed {
		return
	}
	s.offset = offset
	s.stats.events++
	s.recompute()
}

// recompute derives progress and frame index from the stored offset and
// viewport.
func (s *ScrollSequence) recompute() {
	if s.viewport.Known() {
		s.progress = s.layout.Progress(s.offset, s.viewport.Height)
	} else {
		s.progress = 0
	}
	s.frame = s.schedule.FrameIndex(s.progress)
	if s.frame != s.drawnFrame {
		s.dirty = true
	}
}

// State returns the lifecycle state.
func (s *ScrollSequence) State() State {
	return s.state
}

// Progress returns the current scroll progress in [0, 1].
func (s *ScrollSequence) Progress() float64 {
	return s.progress
}

// FrameIndex returns the frame index for the current progress.
func (s *ScrollSequence) FrameIndex() int {
	return s.frame
}

// DrawnFrame returns the index of the frame on the surface, or -1.
func (s *ScrollSequence) DrawnFrame() int {
	return s.drawnFrame
}

// Viewport returns the last viewport reported by the host.
func (s *ScrollSequence) Viewport() Dimensions {
	return s.viewport
}

// Layout returns the page layout.
func (s *ScrollSequence) Layout() PageLayout {
	return s.layout
}

// Schedule returns the frame schedule.
func (s *ScrollSequence) Schedule() *Schedule {
	return s.schedule
}

// Stages returns the overlay windows. The returned slice MUST NOT be mutated.
func (s *ScrollSequence) Stages() []StageWindow {
	return s.stages
}

// Overlays returns the visibility of every stage at the current progress.
func (s *ScrollSequence) Overlays() []Visibility {
	out := make([]Visibility, len(s.stages))
	for i, w := range s.stages {
		out[i] = OverlayVisibility(s.progress, w)
	}
	return out
}

// Cache returns the frame cache.
func (s *ScrollSequence) Cache() *FrameCache {
	return s.cache
}

// Compositor returns the compositor.
func (s *ScrollSequence) Compositor() *Compositor {
	return s.compositor
}

// Canvas returns the sequence-owned canvas, or nil when a Surface was
// supplied in SequenceOptions.
func (s *ScrollSequence) Canvas() *CanvasSurface {
	return s.ownSurface
}

// Mounted reports whether the sequence is attached to a host.
func (s *ScrollSequence) Mounted() bool {
	return s.mounted
}

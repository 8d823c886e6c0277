package scrollseq

import (
	"context"
	"errors"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CacheOptions tunes a FrameCache.
type CacheOptions struct {
	// Concurrency bounds the number of loads in flight. Zero means
	// runtime.NumCPU()*2.
	Concurrency int
}

var errNilImage = errors.New("loader returned no image")

type loadResult struct {
	index int
	img   image.Image
	err   error
}

// FrameCache loads a fixed frame sequence in parallel and exposes the decoded
// frames by index.
//
// Loads run on background goroutines, but their results are only applied by
// Poll. Call Poll from the goroutine that owns the cache (the game loop) so
// slot population, readiness and callbacks never race with readers.
//
// A load attempt counts as settled whether it succeeds or fails. The cache is
// ready once every attempt has settled; failed slots stay absent forever.
type FrameCache struct {
	paths  []string
	loader Loader
	limit  int

	frames  []*Frame
	settled int
	failed  []int
	ready   bool

	started bool
	closed  bool
	results chan loadResult
	done    chan struct{}
	cancel  context.CancelFunc

	onSettled []func(index int, f *Frame, err error)
	onReady   []func()
}

// NewFrameCache creates a cache for the given resource identifiers. Nothing is
// loaded until Start.
func NewFrameCache(paths []string, loader Loader, opts CacheOptions) *FrameCache {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU() * 2
	}
	return &FrameCache{
		paths:   paths,
		loader:  loader,
		limit:   limit,
		frames:  make([]*Frame, len(paths)),
		results: make(chan loadResult, len(paths)),
		done:    make(chan struct{}),
	}
}

// OnSettled registers fn to run (from Poll) once per settled attempt. f is nil
// when err is non-nil.
func (c *FrameCache) OnSettled(fn func(index int, f *Frame, err error)) {
	c.onSettled = append(c.onSettled, fn)
}

// OnReady registers fn to run (from Poll) exactly once, when the last attempt
// settles.
func (c *FrameCache) OnReady(fn func()) {
	c.onReady = append(c.onReady, fn)
}

// Start begins loading every frame. It returns immediately. Calling Start on a
// started cache is a no-op; calling it after Close returns ErrCacheClosed.
func (c *FrameCache) Start(ctx context.Context) error {
	if c.closed {
		return ErrCacheClosed
	}
	if c.started {
		return nil
	}
	c.started = true

	ctx, c.cancel = context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)

	go func() {
		defer close(c.done)
		for i, p := range c.paths {
			g.Go(func() error {
				img, err := c.loader.Load(gctx, p)
				if err == nil && img == nil {
					err = errNilImage
				}
				select {
				case c.results <- loadResult{index: i, img: img, err: err}:
				case <-gctx.Done():
				}
				return nil
			})
		}
		_ = g.Wait()
	}()
	return nil
}

// Poll applies every load result that has arrived since the last call and
// returns how many it applied. After Close, Poll does nothing.
func (c *FrameCache) Poll() int {
	if !c.started || c.closed {
		return 0
	}
	n := 0
	for {
		select {
		case r := <-c.results:
			c.apply(r)
			n++
			if c.closed {
				return n
			}
		default:
			c.checkReady()
			return n
		}
	}
}

func (c *FrameCache) apply(r loadResult) {
	var f *Frame
	if r.err != nil {
		logf("frame %d (%s): %v", r.index, c.paths[r.index], r.err)
		c.failed = append(c.failed, r.index)
	} else {
		f = NewFrame(r.index, c.paths[r.index], r.img)
		c.frames[r.index] = f
	}
	c.settled++
	for _, fn := range c.onSettled {
		fn(r.index, f, r.err)
	}
}

func (c *FrameCache) checkReady() {
	if c.ready || c.settled < len(c.paths) {
		return
	}
	c.ready = true
	if len(c.failed) > 0 {
		logf("frame cache ready: %d/%d loaded, %d failed", len(c.paths)-len(c.failed), len(c.paths), len(c.failed))
	}
	for _, fn := range c.onReady {
		fn()
	}
}

// Wait blocks until every load attempt has finished on its goroutine or ctx
// is done. Results still need a Poll to be applied.
func (c *FrameCache) Wait(ctx context.Context) error {
	if !c.started {
		return nil
	}
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsReady reports whether every load attempt has settled and been applied.
func (c *FrameCache) IsReady() bool {
	return c.ready
}

// Get returns the frame at the 0-based index, or nil if the slot failed, has
// not loaded yet, or the index is out of range.
func (c *FrameCache) Get(index int) *Frame {
	if index < 0 || index >= len(c.frames) {
		return nil
	}
	return c.frames[index]
}

// Len returns the number of slots.
func (c *FrameCache) Len() int {
	return len(c.paths)
}

// Settled returns how many attempts have been applied so far.
func (c *FrameCache) Settled() int {
	return c.settled
}

// Failed returns the indices of slots whose load failed, in settle order.
// The returned slice MUST NOT be mutated.
func (c *FrameCache) Failed() []int {
	return c.failed
}

// Paths returns the resource identifiers. The returned slice MUST NOT be
// mutated.
func (c *FrameCache) Paths() []string {
	return c.paths
}

// Close cancels outstanding loads, drops every frame and releases uploaded
// textures. No callback fires after Close.
func (c *FrameCache) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
	for i, f := range c.frames {
		if f != nil {
			f.dispose()
			c.frames[i] = nil
		}
	}
	c.onSettled = nil
	c.onReady = nil
}

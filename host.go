package scrollseq

// Host reports viewport size and scroll position changes. The sequence
// subscribes on Mount and removes both subscriptions on Unmount.
type Host interface {
	// Viewport returns the current viewport size (zero until measured).
	Viewport() Dimensions
	// ScrollOffset returns the current vertical scroll offset in pixels.
	ScrollOffset() float64
	// OnResize registers fn to run on every viewport change.
	OnResize(fn func(Dimensions)) Subscription
	// OnScroll registers fn to run on every scroll offset change.
	OnScroll(fn func(offset float64)) Subscription
}

// Subscription allows removing a registered host callback.
type Subscription struct {
	id    uint32
	hub   *Hub
	event hubEvent
}

type hubEvent uint8

const (
	hubResize hubEvent = iota
	hubScroll
)

type resizeHandler struct {
	id uint32
	fn func(Dimensions)
}

type scrollHandler struct {
	id uint32
	fn func(float64)
}

// Remove unregisters the callback so it no longer fires. Removing twice, or
// removing the zero Subscription, is a no-op.
func (s Subscription) Remove() {
	if s.hub == nil {
		return
	}
	switch s.event {
	case hubResize:
		s.hub.resize = removeResizeHandler(s.hub.resize, s.id)
	case hubScroll:
		s.hub.scroll = removeScrollHandler(s.hub.scroll, s.id)
	}
}

func removeResizeHandler(s []resizeHandler, id uint32) []resizeHandler {
	for i, h := range s {
		if h.id == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func removeScrollHandler(s []scrollHandler, id uint32) []scrollHandler {
	for i, h := range s {
		if h.id == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// Hub is a synchronous Host implementation: Resize and Scroll store the new
// value and call every registered handler in registration order. It is the
// building block for EbitenHost and serves directly as a host in tests.
type Hub struct {
	viewport Dimensions
	offset   float64

	resize []resizeHandler
	scroll []scrollHandler
	nextID uint32
}

// NewHub returns a hub with the given initial viewport.
func NewHub(vp Dimensions) *Hub {
	return &Hub{viewport: vp}
}

// Viewport returns the last reported viewport.
func (h *Hub) Viewport() Dimensions {
	return h.viewport
}

// ScrollOffset returns the last reported offset.
func (h *Hub) ScrollOffset() float64 {
	return h.offset
}

// OnResize registers a resize handler.
func (h *Hub) OnResize(fn func(Dimensions)) Subscription {
	h.nextID++
	h.resize = append(h.resize, resizeHandler{id: h.nextID, fn: fn})
	return Subscription{id: h.nextID, hub: h, event: hubResize}
}

// OnScroll registers a scroll handler.
func (h *Hub) OnScroll(fn func(float64)) Subscription {
	h.nextID++
	h.scroll = append(h.scroll, scrollHandler{id: h.nextID, fn: fn})
	return Subscription{id: h.nextID, hub: h, event: hubScroll}
}

// Handlers returns the number of registered handlers.
func (h *Hub) Handlers() int {
	return len(h.resize) + len(h.scroll)
}

// Resize records a new viewport and notifies handlers if it changed.
func (h *Hub) Resize(vp Dimensions) {
	if vp == h.viewport {
		return
	}
	h.viewport = vp
	// Iterate over a snapshot so handlers may unsubscribe while running; a
	// handler removed by an earlier one in the same pass does not fire.
	for _, rh := range append([]resizeHandler(nil), h.resize...) {
		if h.registered(hubResize, rh.id) {
			rh.fn(vp)
		}
	}
}

// Scroll records a new offset and notifies handlers if it changed.
func (h *Hub) Scroll(offset float64) {
	if offset == h.offset {
		return
	}
	h.offset = offset
	for _, sh := range append([]scrollHandler(nil), h.scroll...) {
		if h.registered(hubScroll, sh.id) {
			sh.fn(offset)
		}
	}
}

func (h *Hub) registered(ev hubEvent, id uint32) bool {
	switch ev {
	case hubResize:
		for _, rh := range h.resize {
			if rh.id == id {
				return true
			}
		}
	case hubScroll:
		for _, sh := range h.scroll {
			if sh.id == id {
				return true
			}
		}
	}
	return false
}

package scrollseq

// syntheticKind identifies an injected host event.
type syntheticKind uint8

const (
	syntheticScroll   syntheticKind = iota // absolute offset
	syntheticProgress                      // container progress, converted on consume
	syntheticResize                        // viewport size
)

// syntheticEvent represents a single injected host event. Progress events are
// converted to offsets when consumed so they honour the viewport at that time.
type syntheticEvent struct {
	kind          syntheticKind
	value         float64
	width, height int
}

// InjectScroll queues a jump to the given offset. The event is consumed on the
// next Update.
func (h *EbitenHost) InjectScroll(offset float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticScroll, value: offset})
}

// InjectProgress queues a jump to the offset at which the container reaches
// progress p.
func (h *EbitenHost) InjectProgress(p float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticProgress, value: p})
}

// InjectResize queues a viewport change.
func (h *EbitenHost) InjectResize(w, ht int) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticResize, width: w, height: ht})
}

// InjectSweep queues a scroll from progress `from` to `to` spread linearly
// over the given number of frames (minimum 2).
func (h *EbitenHost) InjectSweep(from, to float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		h.InjectProgress(from + (to-from)*t)
	}
}

// Pending returns the number of queued synthetic events.
func (h *EbitenHost) Pending() int {
	return len(h.injectQueue)
}

// processInjected pops one event from the queue and applies it. Returns true
// if an event was consumed (real input should be skipped).
func (h *EbitenHost) processInjected() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	switch evt.kind {
	case syntheticScroll:
		h.scroller.Jump(evt.value)
	case syntheticProgress:
		h.scroller.Jump(h.Layout.Offset(evt.value, h.Viewport().Height))
	case syntheticResize:
		h.SetViewport(evt.width, evt.height)
	}
	return true
}

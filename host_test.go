package scrollseq

import "testing"

func TestHubNotifiesInOrder(t *testing.T) {
	h := NewHub(Dimensions{Width: 10, Height: 10})
	var got []string
	h.OnScroll(func(float64) { got = append(got, "a") })
	h.OnScroll(func(float64) { got = append(got, "b") })
	h.Scroll(5)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("order = %v, want [a b]", got)
	}
	if h.ScrollOffset() != 5 {
		t.Errorf("ScrollOffset = %v, want 5", h.ScrollOffset())
	}
}

func TestHubSkipsUnchangedValues(t *testing.T) {
	h := NewHub(Dimensions{Width: 10, Height: 10})
	resizes, scrolls := 0, 0
	h.OnResize(func(Dimensions) { resizes++ })
	h.OnScroll(func(float64) { scrolls++ })

	h.Resize(Dimensions{Width: 10, Height: 10})
	h.Scroll(0)
	if resizes != 0 || scrolls != 0 {
		t.Errorf("unchanged values notified: resizes=%d scrolls=%d", resizes, scrolls)
	}
	h.Resize(Dimensions{Width: 20, Height: 10})
	h.Scroll(3)
	h.Scroll(3)
	if resizes != 1 || scrolls != 1 {
		t.Errorf("resizes=%d scrolls=%d, want 1 and 1", resizes, scrolls)
	}
}

func TestSubscriptionRemove(t *testing.T) {
	h := NewHub(Dimensions{})
	calls := 0
	sub := h.OnResize(func(Dimensions) { calls++ })
	h.OnScroll(func(float64) {})
	if h.Handlers() != 2 {
		t.Fatalf("Handlers = %d, want 2", h.Handlers())
	}
	sub.Remove()
	sub.Remove()
	Subscription{}.Remove()
	if h.Handlers() != 1 {
		t.Errorf("Handlers = %d, want 1", h.Handlers())
	}
	h.Resize(Dimensions{Width: 1, Height: 1})
	if calls != 0 {
		t.Error("removed handler fired")
	}
}

func TestHubRemoveDuringEmit(t *testing.T) {
	h := NewHub(Dimensions{})
	var second Subscription
	firstCalls, secondCalls := 0, 0
	h.OnScroll(func(float64) {
		firstCalls++
		second.Remove()
	})
	second = h.OnScroll(func(float64) { secondCalls++ })

	h.Scroll(1)
	h.Scroll(2)
	if firstCalls != 2 || secondCalls != 0 {
		t.Errorf("first=%d second=%d, want 2 and 0", firstCalls, secondCalls)
	}
}

func TestHubSelfRemoval(t *testing.T) {
	h := NewHub(Dimensions{})
	calls := 0
	var sub Subscription
	sub = h.OnScroll(func(float64) {
		calls++
		sub.Remove()
	})
	h.Scroll(1)
	h.Scroll(2)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

package scrollseq

import "testing"

// fakeTarget records runner actions and exposes a manual pending count.
type fakeTarget struct {
	pending int
	calls   []string
	labels  []string
}

func (f *fakeTarget) InjectScroll(float64)   { f.calls = append(f.calls, "scroll"); f.pending++ }
func (f *fakeTarget) InjectProgress(float64) { f.calls = append(f.calls, "progress"); f.pending++ }
func (f *fakeTarget) InjectSweep(_, _ float64, n int) {
	f.calls = append(f.calls, "sweep")
	f.pending += n
}
func (f *fakeTarget) InjectResize(int, int)   { f.calls = append(f.calls, "resize"); f.pending++ }
func (f *fakeTarget) Pending() int            { return f.pending }
func (f *fakeTarget) Screenshot(label string) { f.labels = append(f.labels, label) }

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "progress", "progress": 0.25},
			{"action": "sweep", "from": 0, "to": 1, "frames": 30},
			{"action": "resize", "width": 800, "height": 600},
			{"action": "wait", "frames": 3},
			{"action": "scroll", "offset": 120}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Progress != 0.25 {
		t.Error("step 1 mismatch")
	}
	if st := runner.steps[2]; st.From != 0 || st.To != 1 || st.Frames != 30 {
		t.Error("step 2 mismatch")
	}
	if st := runner.steps[3]; st.Width != 800 || st.Height != 600 {
		t.Error("step 3 mismatch")
	}
	if runner.steps[5].Offset != 120 {
		t.Error("step 5 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "click"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStep_WaitsForPending(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "progress", "progress": 0.5},
		{"action": "screenshot", "label": "half"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	target := &fakeTarget{}

	runner.step(target)
	if len(target.calls) != 1 || target.calls[0] != "progress" {
		t.Fatalf("calls = %v", target.calls)
	}
	// The screenshot must wait until the injection has been consumed.
	runner.step(target)
	if len(target.labels) != 0 {
		t.Fatal("screenshot taken while injections were pending")
	}
	target.pending = 0
	runner.step(target)
	if len(target.labels) != 1 || target.labels[0] != "half" {
		t.Errorf("labels = %v, want [half]", target.labels)
	}
	if !runner.Done() {
		t.Error("runner should be done after the last step")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	target := &fakeTarget{}
	for i := 0; i < 3; i++ {
		runner.step(target)
	}
	if len(target.labels) != 0 {
		t.Fatal("screenshot taken before the wait elapsed")
	}
	runner.step(target)
	if len(target.labels) != 1 {
		t.Errorf("labels = %v, want one screenshot", target.labels)
	}
}

func TestRunnerStep_Sweep(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "sweep", "from": 0, "to": 1, "frames": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	target := &fakeTarget{}
	runner.step(target)
	if target.pending != 4 {
		t.Errorf("pending = %d, want 4", target.pending)
	}
	if runner.Done() {
		t.Error("runner should not be done while the sweep is pending")
	}
	target.pending = 0
	runner.step(target)
	if !runner.Done() {
		t.Error("runner should be done once the sweep drained")
	}
}

func TestRunnerDrivesEbitenHost(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "progress", "progress": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	h := newTestHost()
	target := &hostTarget{EbitenHost: h}
	runner.step(target)
	if h.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", h.Pending())
	}
	h.Update(0)
	runner.step(target)
	if !runner.Done() || h.ScrollOffset() != 1000 {
		t.Errorf("done=%v offset=%v", runner.Done(), h.ScrollOffset())
	}
}

// hostTarget adds a no-op Screenshot to an EbitenHost.
type hostTarget struct{ *EbitenHost }

func (hostTarget) Screenshot(string) {}

package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Title: "preload", Out: &buf}
	r.Start(2)
	r.Update(1, "frames/frame-001.jpg")
	r.Update(2, "frames/frame-002.jpg")
	r.Finish()

	want := "preload: 2 items\n[1/2] frames/frame-001.jpg\n[2/2] frames/frame-002.jpg\npreload: done\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewReporterPicksCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x", &bytes.Buffer{}).(*CIReporter); !ok {
		t.Error("expected a CIReporter when CI is set")
	}
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter("x", &bytes.Buffer{}).(*TerminalReporter); !ok {
		t.Error("expected a TerminalReporter outside CI")
	}
}

func TestTerminalReporterWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{Title: "render", Out: &buf}
	r.Update(1, "ignored before Start")
	r.Start(3)
	r.Update(3, "done")
	r.Finish()
	if buf.Len() == 0 {
		t.Error("expected progress bar output")
	}
}

package contact

import (
	"context"
	"errors"
	"testing"
	"time"
)

var validForm = Form{Name: "Ada", Email: "ada@example.com", Message: "Hello"}

type relayFunc func(ctx context.Context, f Form) error

func (f relayFunc) Send(ctx context.Context, form Form) error { return f(ctx, form) }

func TestSubmitterSuccessReturnsToIdle(t *testing.T) {
	sent := 0
	s := NewSubmitter(relayFunc(func(context.Context, Form) error { sent++; return nil }))
	s.hold = 20 * time.Millisecond
	defer s.Close()

	if err := s.Submit(context.Background(), validForm); err != nil {
		t.Fatal(err)
	}
	if s.Status() != StatusSuccess || sent != 1 {
		t.Fatalf("status = %v, sent = %d", s.Status(), sent)
	}
	deadline := time.Now().Add(2 * time.Second)
	for s.Status() != StatusIdle {
		if time.Now().After(deadline) {
			t.Fatal("status never returned to idle")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSubmitterSubmittingWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	s := NewSubmitter(relayFunc(func(context.Context, Form) error {
		close(started)
		<-release
		return nil
	}))
	defer s.Close()

	done := make(chan error)
	go func() { done <- s.Submit(context.Background(), validForm) }()
	<-started
	if s.Status() != StatusSubmitting {
		t.Errorf("status = %v, want submitting", s.Status())
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

func TestSubmitterFailure(t *testing.T) {
	boom := errors.New("boom")
	s := NewSubmitter(relayFunc(func(context.Context, Form) error { return boom }))
	if err := s.Submit(context.Background(), validForm); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if s.Status() != StatusError {
		t.Errorf("status = %v, want error", s.Status())
	}
}

func TestSubmitterInvalidFormSkipsRelay(t *testing.T) {
	called := false
	s := NewSubmitter(relayFunc(func(context.Context, Form) error { called = true; return nil }))
	err := s.Submit(context.Background(), Form{Name: "A", Email: "nope", Message: "m"})
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FieldErrors", err)
	}
	if called {
		t.Error("relay called for an invalid form")
	}
	if s.Status() != StatusIdle {
		t.Errorf("status = %v, want idle", s.Status())
	}
	if s.Errors()[FieldEmail] != "Please enter a valid email" {
		t.Errorf("Errors = %v", s.Errors())
	}

	// A later valid submission clears the field errors.
	s.relay = relayFunc(func(context.Context, Form) error { return nil })
	if err := s.Submit(context.Background(), validForm); err != nil {
		t.Fatal(err)
	}
	if s.Errors() != nil {
		t.Errorf("Errors = %v, want nil", s.Errors())
	}
	s.Close()
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusIdle:       "idle",
		StatusSubmitting: "submitting",
		StatusSuccess:    "success",
		StatusError:      "error",
		Status(9):        "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}

package contact

import (
	"context"
	"sync"
	"time"
)

// Status is the submission state shown next to the form.
type Status uint8

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// SuccessHold is how long StatusSuccess is shown before returning to idle.
const SuccessHold = 3 * time.Second

// Submitter validates and relays forms while tracking a Status. It is safe
// for concurrent use.
type Submitter struct {
	relay Relay
	hold  time.Duration

	mu     sync.Mutex
	status Status
	errs   FieldErrors
	timer  *time.Timer
}

// NewSubmitter returns an idle submitter.
func NewSubmitter(relay Relay) *Submitter {
	return &Submitter{relay: relay, hold: SuccessHold}
}

// Status returns the current status.
func (s *Submitter) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Errors returns the field errors of the last rejected form.
func (s *Submitter) Errors() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs
}

// Submit validates f and, if valid, relays it. Invalid forms leave the status
// unchanged and return FieldErrors. A successful send moves to StatusSuccess,
// which falls back to idle after SuccessHold; a failed send moves to
// StatusError.
func (s *Submitter) Submit(ctx context.Context, f Form) error {
	if err := f.Validate(); err != nil {
		s.mu.Lock()
		if fe, ok := err.(FieldErrors); ok {
			s.errs = fe
		}
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.errs = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.status = StatusSubmitting
	s.mu.Unlock()

	err := s.relay.Send(ctx, f)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusError
		return err
	}
	s.status = StatusSuccess
	s.timer = time.AfterFunc(s.hold, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.status == StatusSuccess {
			s.status = StatusIdle
		}
	})
	return nil
}

// Close stops a pending success reset.
func (s *Submitter) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

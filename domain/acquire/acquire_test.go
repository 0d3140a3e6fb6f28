package acquire

import (
	"strings"
	"testing"
)

func testOptions() Options {
	return Options{
		Parameters:   DefaultParameters(1920, 1080, 30, "MJPG"),
		ReadAttempts: 3,
		ReadDelay:    0,
	}
}

func TestAcquire_PreferredModeWins(t *testing.T) {
	h := newFakeHandle(true, true)
	b := &fakeBackend{handles: []*fakeHandle{h}}

	result, err := Acquire(b, IndexSource(0), testOptions(), testLogger)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if result.Mode != ModeRequested {
		t.Fatalf("expected %q mode, got %q", ModeRequested, result.Mode)
	}
	if result.FirstFrame == nil {
		t.Fatalf("expected a first frame")
	}
	if len(b.calls) != 1 {
		t.Fatalf("driver-defaults mode must not be attempted, got %d opens", len(b.calls))
	}
	if len(h.setCalls) == 0 {
		t.Fatalf("preferred mode must negotiate parameters")
	}
	if h.closed != 0 {
		t.Fatalf("adopted handle must stay open, closed=%d", h.closed)
	}
}

func TestAcquire_FallsBackToDriverDefaults(t *testing.T) {
	h1 := newFakeHandle(true) // validation never succeeds
	h2 := newFakeHandle(true, true)
	b := &fakeBackend{handles: []*fakeHandle{h1, h2}}

	result, err := Acquire(b, IndexSource(0), testOptions(), testLogger)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if result.Mode != ModeDriver {
		t.Fatalf("expected %q mode, got %q", ModeDriver, result.Mode)
	}
	if result.Handle != Handle(h2) {
		t.Fatalf("expected the second handle to be adopted")
	}
	if h1.closed != 1 {
		t.Fatalf("discarded handle must be closed exactly once, closed=%d", h1.closed)
	}
	if len(h2.setCalls) != 0 {
		t.Fatalf("driver-defaults mode must not set parameters, got %v", h2.setCalls)
	}
	if h2.closed != 0 {
		t.Fatalf("adopted handle must stay open, closed=%d", h2.closed)
	}
}

func TestAcquire_BothModesFail(t *testing.T) {
	h1 := newFakeHandle(true)
	h2 := newFakeHandle(true)
	b := &fakeBackend{handles: []*fakeHandle{h1, h2}}

	_, err := Acquire(b, IndexSource(0), testOptions(), testLogger)
	ae, ok := err.(*AcquireError)
	if !ok {
		t.Fatalf("expected *AcquireError, got %T: %v", err, err)
	}
	if len(ae.Reasons) != 2 {
		t.Fatalf("expected a reason per mode, got %v", ae.Reasons)
	}
	msg := ae.Error()
	if !strings.Contains(msg, ModeRequested) || !strings.Contains(msg, ModeDriver) {
		t.Fatalf("error must enumerate both modes: %q", msg)
	}
	if h1.closed != 1 || h2.closed != 1 {
		t.Fatalf("every discarded handle must be closed exactly once: %d, %d", h1.closed, h2.closed)
	}
}

func TestAcquire_OpenFailurePropagates(t *testing.T) {
	b := &fakeBackend{}

	_, err := Acquire(b, PathSource("rtsp://host/stream"), testOptions(), testLogger)
	if _, ok := err.(*OpenError); !ok {
		t.Fatalf("expected *OpenError, got %T: %v", err, err)
	}
	if !IsCameraError(err) {
		t.Fatalf("open failures belong to the camera error category")
	}
}

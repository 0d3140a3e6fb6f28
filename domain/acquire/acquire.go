package acquire

import (
	"fmt"
	"log/slog"
	"time"
)

// Default capture profile.
const (
	DefaultCaptureWidth  = 1920
	DefaultCaptureHeight = 1080
	DefaultCaptureFPS    = 30
	DefaultFourCC        = "MJPG"
	DefaultReadAttempts  = 10
	DefaultReadDelay     = 20 * time.Millisecond
)

// Options configures an acquisition run.
type Options struct {
	Parameters   []Parameter
	ReadAttempts int
	ReadDelay    time.Duration
}

// DefaultOptions returns Options carrying the default capture profile.
func DefaultOptions() Options {
	return Options{
		Parameters: DefaultParameters(
			DefaultCaptureWidth, DefaultCaptureHeight, DefaultCaptureFPS, DefaultFourCC),
		ReadAttempts: DefaultReadAttempts,
		ReadDelay:    DefaultReadDelay,
	}
}

// Result is a validated capture ready for steady-state use. The caller owns
// Handle and must close it; FirstFrame is the frame that proved the device
// live and stays valid until the next Read.
type Result struct {
	Handle     Handle
	FirstFrame Frame
	Mode       string
}

// Acquisition modes, tried strictly in this order.
const (
	ModeRequested = "requested defaults"
	ModeDriver    = "driver defaults"
)

// Acquire obtains a validated capture handle: first with the preferred
// settings applied, then falling back to whatever the driver chose. Each
// mode opens a fresh handle; a handle discarded by a failed validation is
// closed before the next mode begins. If both modes fail the returned
// AcquireError aggregates the per-mode reasons.
func Acquire(b Backend, src Source, opts Options, logger *slog.Logger) (*Result, error) {
	modes := []struct {
		name      string
		negotiate bool
	}{
		{ModeRequested, true},
		{ModeDriver, false},
	}

	var reasons []string
	for _, m := range modes {
		h, err := OpenCapture(b, src, logger)
		if err != nil {
			return nil, err
		}

		if m.negotiate {
			ApplyParameters(b, h, opts.Parameters, logger)
		}

		frame, ok := ReadInitialFrame(h, opts.ReadAttempts, opts.ReadDelay)
		if ok {
			return &Result{Handle: h, FirstFrame: frame, Mode: m.name}, nil
		}

		reasons = append(reasons, fmt.Sprintf(
			"%s: failed to read initial frame after %d attempts", m.name, opts.ReadAttempts))
		logger.Warn("no initial frame in this mode; retrying",
			slog.String("mode", m.name), slog.Int("attempts", opts.ReadAttempts))
		_ = h.Close()
	}
	return nil, &AcquireError{Reasons: reasons}
}

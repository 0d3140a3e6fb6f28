package acquire

import "time"

// sleep is stubbed in tests to count inter-attempt delays.
var sleep = time.Sleep

// ReadInitialFrame confirms the handle actually produces frames, reading up
// to attempts times with delay between failed reads (none after the last).
// A false result is a signal to the orchestrator, not a fatal error.
func ReadInitialFrame(h Handle, attempts int, delay time.Duration) (Frame, bool) {
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if frame, ok := h.Read(); ok {
			return frame, true
		}
		if i < attempts-1 {
			sleep(delay)
		}
	}
	return nil, false
}

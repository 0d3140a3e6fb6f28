package acquire

import (
	"errors"
	"fmt"
	"strings"
)

// OpenError reports that no open candidate yielded a usable device.
type OpenError struct {
	Source Source
	Tried  []string
	Hint   string
}

func (e *OpenError) Error() string {
	msg := fmt.Sprintf("Unable to open camera source: %s. Tried: %s.",
		e.Source, strings.Join(e.Tried, ", "))
	if e.Hint != "" {
		msg += " " + e.Hint
	}
	return msg
}

// AcquireError reports that every acquisition mode failed startup validation.
type AcquireError struct {
	Reasons []string
}

func (e *AcquireError) Error() string {
	if len(e.Reasons) == 0 {
		return "Failed to read frame from camera source."
	}
	return fmt.Sprintf("Failed to read frame from camera source. (%s)",
		strings.Join(e.Reasons, "; "))
}

// ReadError reports a frame read failure on a previously validated handle.
type ReadError struct{}

func (e *ReadError) Error() string {
	return "Failed to read frame from camera source."
}

// IsCameraError reports whether err belongs to the camera error category
// surfaced to the user as exit code 1.
func IsCameraError(err error) bool {
	var oe *OpenError
	var ae *AcquireError
	var re *ReadError
	return errors.As(err, &oe) || errors.As(err, &ae) || errors.As(err, &re)
}

// Package acquire implements the capture acquisition protocol: source
// normalization, candidate-ordered device opening, best-effort parameter
// negotiation, startup validation and the two-mode orchestration that ties
// them together. The package is backend-agnostic; the OpenCV adapter lives
// in the capture package.
package acquire

// Property identifies a negotiable capture parameter.
type Property int

const (
	PropFrameWidth Property = iota
	PropFrameHeight
	PropFrameRate
	PropFourCC
)

func (p Property) String() string {
	switch p {
	case PropFrameWidth:
		return "frame_width"
	case PropFrameHeight:
		return "frame_height"
	case PropFrameRate:
		return "frame_rate"
	case PropFourCC:
		return "fourcc"
	}
	return "unknown"
}

// API selects a specific capture backend inside the underlying library.
// APIAny lets the library choose.
type API int

const APIAny API = 0

// Frame is one captured image.
type Frame interface {
	Empty() bool
}

// Handle is an open capture device. It is exclusively owned by whichever
// code path currently holds it and must be closed exactly once.
type Handle interface {
	IsOpened() bool

	// Read fetches the next frame. The returned Frame is owned by the
	// handle and is invalidated by the next Read or Close.
	Read() (Frame, bool)

	// Set requests a parameter value. False means the backend could not
	// confirm the change; callers verify via Get.
	Set(p Property, value float64) bool

	// Get reads back the current parameter value. False when unavailable.
	Get(p Property) (float64, bool)

	// EncodeFourCC converts a four-character codec code to the backend's
	// native numeric representation. False when unsupported.
	EncodeFourCC(code string) (float64, bool)

	Close() error
}

// Backend opens capture devices and answers capability queries, so optional
// operations are probed explicitly before use.
type Backend interface {
	// Open tries to open src with the given API preference. A non-nil
	// handle may still report IsOpened()==false; the caller owns closing it
	// either way.
	Open(src Source, api API) (Handle, error)

	// Supports reports whether the backend exposes the given parameter.
	Supports(p Property) bool
}

// Package capture adapts GoCV (OpenCV) to the acquisition domain: it
// implements the capture backend and the HighGUI display window used by
// the app.
package capture

import (
	"gocv.io/x/gocv"

	"camfeed/domain/acquire"
)

// OpenCV is the gocv-backed capture backend.
type OpenCV struct{}

// NewBackend returns the OpenCV capture backend.
func NewBackend() *OpenCV { return &OpenCV{} }

// properties maps domain parameters onto OpenCV capture properties.
var properties = map[acquire.Property]gocv.VideoCaptureProperties{
	acquire.PropFrameWidth:  gocv.VideoCaptureFrameWidth,
	acquire.PropFrameHeight: gocv.VideoCaptureFrameHeight,
	acquire.PropFrameRate:   gocv.VideoCaptureFPS,
	acquire.PropFourCC:      gocv.VideoCaptureFOURCC,
}

// Supports reports whether the parameter maps onto an OpenCV capture
// property.
func (o *OpenCV) Supports(p acquire.Property) bool {
	_, ok := properties[p]
	return ok
}

// Open opens src through OpenCV. gocv reports an error when the device did
// not open, but the handle it returns is still closable; it is handed back
// either way so the opener's cleanup discipline applies.
func (o *OpenCV) Open(src acquire.Source, api acquire.API) (acquire.Handle, error) {
	var (
		vc  *gocv.VideoCapture
		err error
	)
	if api == acquire.APIAny {
		vc, err = gocv.OpenVideoCapture(src.Value())
	} else {
		vc, err = gocv.OpenVideoCaptureWithAPI(src.Value(), gocv.VideoCaptureAPI(api))
	}
	if vc == nil {
		return nil, err
	}
	return &handle{vc: vc, mat: gocv.NewMat()}, err
}

// handle wraps a gocv VideoCapture together with a reusable frame Mat.
type handle struct {
	vc  *gocv.VideoCapture
	mat gocv.Mat
}

func (h *handle) IsOpened() bool { return h.vc.IsOpened() }

// Read fills the handle's reusable Mat; the returned frame aliases it and
// is only valid until the next Read or Close.
func (h *handle) Read() (acquire.Frame, bool) {
	if !h.vc.Read(&h.mat) {
		return nil, false
	}
	if h.mat.Empty() {
		return nil, false
	}
	return &Frame{mat: &h.mat}, true
}

// Set requests the property but cannot confirm it: gocv's Set reports no
// status, so the negotiator verifies via readback.
func (h *handle) Set(p acquire.Property, value float64) bool {
	prop, ok := properties[p]
	if !ok {
		return false
	}
	h.vc.Set(prop, value)
	return false
}

func (h *handle) Get(p acquire.Property) (float64, bool) {
	prop, ok := properties[p]
	if !ok {
		return 0, false
	}
	return h.vc.Get(prop), true
}

// EncodeFourCC converts a four-character codec code to OpenCV's fourcc
// integer representation.
func (h *handle) EncodeFourCC(code string) (float64, bool) {
	v := h.vc.ToCodec(code)
	if v < 0 {
		return 0, false
	}
	return v, true
}

func (h *handle) Close() error {
	_ = h.mat.Close()
	return h.vc.Close()
}

// Frame wraps a gocv Mat for display.
type Frame struct {
	mat *gocv.Mat
}

func (f *Frame) Empty() bool { return f.mat == nil || f.mat.Empty() }

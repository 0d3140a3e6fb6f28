package capture

import (
	"gocv.io/x/gocv"

	"camfeed/domain/acquire"
)

// Window is the display collaborator backed by OpenCV's HighGUI.
type Window struct {
	win *gocv.Window
}

// NewWindow creates a named, user-resizable window.
func NewWindow(name string) *Window {
	return &Window{win: gocv.NewWindow(name)}
}

// Resize sets the on-screen window size; frames are scaled to fit.
func (w *Window) Resize(width, height int) {
	w.win.ResizeWindow(width, height)
}

// Show renders a frame produced by this package's backend. Frames from
// other backends are ignored.
func (w *Window) Show(f acquire.Frame) {
	cf, ok := f.(*Frame)
	if !ok || cf.mat == nil {
		return
	}
	w.win.IMShow(*cf.mat)
}

// PollKey pumps the GUI event loop for up to waitMS milliseconds and
// returns the pressed key code, or -1 when none.
func (w *Window) PollKey(waitMS int) int {
	return w.win.WaitKey(waitMS)
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}

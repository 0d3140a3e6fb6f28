package app

import (
	"log/slog"

	"camfeed/config"
	"camfeed/domain/acquire"
)

// Display shows frames and polls for key input. Implemented by
// capture.Window; faked in tests.
type Display interface {
	Resize(width, height int)
	Show(f acquire.Frame)
	PollKey(waitMS int) int
	Close() error
}

// App wires the acquisition protocol to the steady-state display loop.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	backend    acquire.Backend
	newDisplay func(name string) Display
}

// New assembles the app. The display is constructed lazily so no window
// appears unless acquisition succeeds.
func New(cfg *config.Config, logger *slog.Logger, backend acquire.Backend, newDisplay func(name string) Display) *App {
	return &App{cfg: cfg, logger: logger, backend: backend, newDisplay: newDisplay}
}

// Run acquires the camera source and streams frames until the quit key is
// pressed. The capture handle and the window are released on every exit
// path, including a mid-stream read failure.
func (a *App) Run(cameraSource string) error {
	src := acquire.Normalize(cameraSource)

	opts := acquire.Options{
		Parameters: acquire.DefaultParameters(
			a.cfg.CaptureWidth, a.cfg.CaptureHeight, a.cfg.CaptureFPS, a.cfg.FourCC),
		ReadAttempts: a.cfg.ReadAttempts,
		ReadDelay:    a.cfg.ReadDelay(),
	}
	result, err := acquire.Acquire(a.backend, src, opts, a.logger)
	if err != nil {
		return err
	}
	defer result.Handle.Close()

	a.logger.Info("capture acquired",
		slog.String("source", src.String()), slog.String("mode", result.Mode))

	display := a.newDisplay(a.cfg.WindowName)
	defer display.Close()
	display.Resize(a.cfg.WindowWidth, a.cfg.WindowHeight)

	quit := int(a.cfg.QuitKey())
	frame := result.FirstFrame
	for {
		display.Show(frame)

		if key := display.PollKey(1); key&0xff == quit {
			return nil
		}

		next, ok := result.Handle.Read()
		if !ok {
			return &acquire.ReadError{}
		}
		frame = next
	}
}

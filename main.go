package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"camfeed/app"
	"camfeed/capture"
	"camfeed/config"
	"camfeed/debug"
	"camfeed/domain/acquire"
)

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if acquire.IsCameraError(err) {
		os.Exit(1)
	}
	os.Exit(2)
}

func newRootCmd() *cobra.Command {
	var (
		cameraSource string
		configPath   string
		debugMode    bool
		listDevices  bool
	)

	cmd := &cobra.Command{
		Use:           "camfeed",
		Short:         "Open a webcam/video source and show its feed",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listDevices {
				return printDevices(cmd.OutOrStdout())
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if debugMode {
				cfg.Debug = true
			}

			level := slog.LevelInfo
			if cfg.Debug {
				level = slog.LevelDebug
			}
			logger := NewLogger(level)
			if cfg.Debug {
				debug.StartRuntimeLogger(2*time.Second, logger)
			}

			application := app.New(cfg, logger, capture.NewBackend(), func(name string) app.Display {
				return capture.NewWindow(name)
			})
			return application.Run(cameraSource)
		},
	}

	cmd.Flags().StringVar(&cameraSource, "camera-source", "/dev/video0", "Camera source index (e.g. 0) or video path/URL")
	cmd.Flags().StringVar(&configPath, "config", "camfeed.json", "Path to a JSON config file (optional)")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging and runtime diagnostics")
	cmd.Flags().BoolVar(&listDevices, "list-devices", false, "List video capture devices and exit")
	return cmd
}

func printDevices(w io.Writer) error {
	devices, err := acquire.ListDevices()
	if err != nil {
		return err
	}
	for _, d := range devices {
		fmt.Fprintln(w, d)
	}
	return nil
}

package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cjeanneret/tethergo/internal/config"
	"github.com/cjeanneret/tethergo/internal/debug"
	"github.com/cjeanneret/tethergo/internal/hw/camera"
	"github.com/cjeanneret/tethergo/internal/hw/gpio"
	"github.com/cjeanneret/tethergo/internal/hw/ptp"
)

// loadConfig reads the config file named by the persistent --config
// flag and initializes debug output.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	debug.Init(cfg.Defaults.DebugLevel)
	return cfg, nil
}

// newContext builds a session context that routes camera chatter to
// the debug log.
func newContext() *ptp.Context {
	return &ptp.Context{
		OnStatus: func(msg string) {
			debug.Live("camera: %s", msg)
		},
		OnProgress: func(done, total int64) {
			debug.Trace("camera: %d/%d bytes", done, total)
		},
		OnError: func(msg string) {
			debug.Verbose("camera error: %s", msg)
		},
	}
}

// openSession opens the configured PTP camera. The caller must Close
// the returned session.
func openSession(cfg *config.Config, cctx *ptp.Context) (*ptp.Session, error) {
	drv, err := ptp.NewDriver(cfg.Camera.Driver)
	if err != nil {
		return nil, err
	}
	sess, err := ptp.Open(drv, cctx)
	if err != nil {
		return nil, fmt.Errorf("open camera: %w", err)
	}
	return sess, nil
}

// msDuration converts a millisecond flag value to a duration.
func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// newCableRelease wires a cable release from the GPIO section of the
// config. Only valid when camera.driver is gpio_remote.
func newCableRelease(cfg *config.Config) (camera.Camera, error) {
	g, err := gpio.NewDriver(cfg.Camera.MockGPIO)
	if err != nil {
		return nil, fmt.Errorf("gpio: %w", err)
	}
	return camera.NewCableRelease(g, camera.ReleaseConfig{
		FocusPin:     cfg.Camera.FocusPin,
		ShutterPin:   cfg.Camera.ShutterPin,
		FocusDelay:   cfg.FocusDelay(),
		ShutterDelay: cfg.ShutterDelay(),
	}), nil
}

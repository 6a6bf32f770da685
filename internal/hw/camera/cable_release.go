package camera

import (
	"time"

	"github.com/cjeanneret/tethergo/internal/debug"
	"github.com/cjeanneret/tethergo/internal/hw/gpio"
)

// CableRelease is a Camera implementation for bodies controlled
// through a wired remote connector (Nikon D90 and similar), with three
// lines:
// - GND: connected to Raspberry Pi ground
// - FOCUS: autofocus (activate by setting to LOW)
// - SHUTTER: trigger (activate by setting to LOW)
//
// Trigger sequence:
// 1. FOCUS to LOW (activates autofocus)
// 2. Wait for autofocus to complete
// 3. SHUTTER to LOW (triggers the shot)
// 4. Hold for a moment
// 5. Set SHUTTER and FOCUS back to HIGH
type CableRelease struct {
	gpio gpio.Driver
	cfg  ReleaseConfig
}

// ReleaseConfig holds the wiring and timing of a cable release.
type ReleaseConfig struct {
	FocusPin     int           // GPIO pin for the FOCUS line
	ShutterPin   int           // GPIO pin for the SHUTTER line
	FocusDelay   time.Duration // wait time for autofocus
	ShutterDelay time.Duration // shutter hold time
}

// NewCableRelease configures both pins as outputs and parks the lines
// HIGH (inactive).
func NewCableRelease(g gpio.Driver, cfg ReleaseConfig) *CableRelease {
	_ = g.SetupPin(cfg.FocusPin, gpio.Output)
	_ = g.SetupPin(cfg.ShutterPin, gpio.Output)

	_ = g.WritePin(cfg.FocusPin, gpio.High)
	_ = g.WritePin(cfg.ShutterPin, gpio.High)

	return &CableRelease{gpio: g, cfg: cfg}
}

// Shoot triggers one photo.
// Sequence: FOCUS -> wait for AF -> SHUTTER -> hold -> release
func (c *CableRelease) Shoot() error {
	debug.Verbose("Camera: triggering shot (focus=%d, shutter=%d)", c.cfg.FocusPin, c.cfg.ShutterPin)

	if err := c.gpio.WritePin(c.cfg.FocusPin, gpio.Low); err != nil {
		return err
	}

	debug.Trace("Camera: waiting for autofocus (%v)", c.cfg.FocusDelay)
	time.Sleep(c.cfg.FocusDelay)

	if err := c.gpio.WritePin(c.cfg.ShutterPin, gpio.Low); err != nil {
		// Release FOCUS on error so the lines don't stay active.
		_ = c.gpio.WritePin(c.cfg.FocusPin, gpio.High)
		return err
	}

	time.Sleep(c.cfg.ShutterDelay)

	if err := c.gpio.WritePin(c.cfg.ShutterPin, gpio.High); err != nil {
		return err
	}
	if err := c.gpio.WritePin(c.cfg.FocusPin, gpio.High); err != nil {
		return err
	}

	debug.Verbose("Camera: shot triggered")
	return nil
}

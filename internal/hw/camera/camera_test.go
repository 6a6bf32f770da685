package camera

import (
	"testing"
	"time"

	"github.com/cjeanneret/tethergo/internal/hw/gpio"
	"github.com/cjeanneret/tethergo/internal/hw/ptp"
)

// recordingDriver records GPIO calls for verification.
type recordingDriver struct {
	calls []gpioCall
}

type gpioCall struct {
	op    string
	pin   int
	level gpio.Level
}

func (d *recordingDriver) SetupPin(pin int, mode gpio.PinMode) error {
	d.calls = append(d.calls, gpioCall{op: "setup", pin: pin})
	return nil
}

func (d *recordingDriver) WritePin(pin int, level gpio.Level) error {
	d.calls = append(d.calls, gpioCall{op: "write", pin: pin, level: level})
	return nil
}

func (d *recordingDriver) ReadPin(pin int) (gpio.Level, error) {
	return gpio.Low, nil
}

func (d *recordingDriver) Close() error { return nil }

func (d *recordingDriver) writeCalls() []gpioCall {
	var result []gpioCall
	for _, c := range d.calls {
		if c.op == "write" {
			result = append(result, c)
		}
	}
	return result
}

func testConfig() ReleaseConfig {
	return ReleaseConfig{
		FocusPin:     24,
		ShutterPin:   25,
		FocusDelay:   time.Microsecond,
		ShutterDelay: time.Microsecond,
	}
}

func TestCableRelease_PinsInitializedHigh(t *testing.T) {
	drv := &recordingDriver{}
	NewCableRelease(drv, testConfig())

	// After construction, both lines must be parked HIGH (inactive).
	focusHigh := false
	shutterHigh := false
	for _, c := range drv.writeCalls() {
		if c.pin == 24 && c.level == gpio.High {
			focusHigh = true
		}
		if c.pin == 25 && c.level == gpio.High {
			shutterHigh = true
		}
	}
	if !focusHigh {
		t.Error("focus pin should be initialized to HIGH")
	}
	if !shutterHigh {
		t.Error("shutter pin should be initialized to HIGH")
	}
}

func TestCableRelease_ShootSequence(t *testing.T) {
	drv := &recordingDriver{}
	cam := NewCableRelease(drv, testConfig())
	drv.calls = nil // reset after init

	if err := cam.Shoot(); err != nil {
		t.Fatalf("Shoot: %v", err)
	}

	expected := []struct {
		pin   int
		level gpio.Level
		desc  string
	}{
		{24, gpio.Low, "focus LOW (activate AF)"},
		{25, gpio.Low, "shutter LOW (trigger)"},
		{25, gpio.High, "shutter HIGH (release)"},
		{24, gpio.High, "focus HIGH (release)"},
	}

	writes := drv.writeCalls()
	if len(writes) != len(expected) {
		t.Fatalf("expected %d writes, got %d: %v", len(expected), len(writes), writes)
	}
	for i, exp := range expected {
		if writes[i].pin != exp.pin || writes[i].level != exp.level {
			t.Errorf("step %d (%s): pin=%d level=%v, want pin=%d level=%v",
				i, exp.desc, writes[i].pin, writes[i].level, exp.pin, exp.level)
		}
	}
}

func TestCableRelease_ImplementsCamera(t *testing.T) {
	drv := &recordingDriver{}
	var _ Camera = NewCableRelease(drv, testConfig())
}

func TestTethered_ShootCaptures(t *testing.T) {
	sess, err := ptp.Open(ptp.NewSim(), nil)
	if err != nil {
		t.Fatalf("Open(sim): %v", err)
	}
	defer sess.Close()

	cam := NewTethered(sess, nil)
	var _ Camera = cam

	if err := cam.Shoot(); err != nil {
		t.Fatalf("Shoot: %v", err)
	}

	// The shot must have landed on the camera's storage.
	list, err := sess.Storage(nil)
	if err != nil {
		t.Fatalf("Storage: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("storage entries = %d, want 1", len(list))
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// CameraConfig describes how to reach the camera.
// Driver selects a backend: "sim" (built-in simulated camera),
// "gphoto2" (libgphoto2 binding, requires the gphoto2 build tag), or
// "gpio_remote" (wired cable release on GPIO pins).
type CameraConfig struct {
	Driver         string `yaml:"driver"`
	FocusPin       int    `yaml:"focus_pin"`        // GPIO pin for the FOCUS line (gpio_remote)
	ShutterPin     int    `yaml:"shutter_pin"`      // GPIO pin for the SHUTTER line (gpio_remote)
	FocusDelayMs   int    `yaml:"focus_delay_ms"`   // autofocus delay (ms)
	ShutterDelayMs int    `yaml:"shutter_delay_ms"` // shutter hold time (ms)
	MockGPIO       bool   `yaml:"mock_gpio"`        // use mock GPIO (true=dev/test, false=real Raspberry Pi)
}

// TetherConfig holds defaults for tethered shooting runs.
type TetherConfig struct {
	Frames        int    `yaml:"frames"`          // frames per run
	IntervalMs    int    `yaml:"interval_ms"`     // pause between frames (ms)
	WaitTimeoutMs int    `yaml:"wait_timeout_ms"` // per-poll event wait budget (ms)
	DownloadDir   string `yaml:"download_dir"`    // where downloaded files land
}

// WebConfig configures the status/monitor server.
type WebConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// DefaultsConfig contains generic parameters.
type DefaultsConfig struct {
	DebugLevel int `yaml:"debug_level"` // debug level 0-4 (0=off, 1=info, 2=live, 3=verbose, 4=trace)
}

// Config aggregates all application configuration.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Tether   TetherConfig   `yaml:"tether"`
	Web      WebConfig      `yaml:"web"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// ValidateConfigPath checks that a user-supplied config path points at a
// .yaml file inside a configs/ directory, with no traversal out of it.
func ValidateConfigPath(path string) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}
	if filepath.Ext(path) != ".yaml" {
		return fmt.Errorf("config file must have a .yaml extension: %q", path)
	}
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if strings.Contains(path, "..") {
		return fmt.Errorf("config path must not contain traversal: %q", path)
	}
	if filepath.Base(filepath.Dir(abs)) != "configs" {
		return fmt.Errorf("config file must live in a configs/ directory: %q", path)
	}
	return nil
}

// Load reads a YAML file and returns the configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// Basic validation
	switch cfg.Camera.Driver {
	case "sim", "gphoto2":
	case "gpio_remote":
		if cfg.Camera.FocusPin <= 0 || cfg.Camera.ShutterPin <= 0 {
			return nil, fmt.Errorf("camera.focus_pin and camera.shutter_pin are required for gpio_remote")
		}
	case "":
		return nil, fmt.Errorf("camera.driver is required")
	default:
		return nil, fmt.Errorf("unknown camera.driver: %q", cfg.Camera.Driver)
	}

	if cfg.Tether.Frames < 0 {
		return nil, fmt.Errorf("tether.frames must be >= 0, got %d", cfg.Tether.Frames)
	}
	if cfg.Tether.IntervalMs < 0 {
		return nil, fmt.Errorf("tether.interval_ms must be >= 0, got %d", cfg.Tether.IntervalMs)
	}
	if cfg.Tether.WaitTimeoutMs < 0 {
		return nil, fmt.Errorf("tether.wait_timeout_ms must be >= 0, got %d", cfg.Tether.WaitTimeoutMs)
	}
	if cfg.Defaults.DebugLevel < 0 || cfg.Defaults.DebugLevel > 4 {
		return nil, fmt.Errorf("debug_level must be between 0 and 4, got %d", cfg.Defaults.DebugLevel)
	}

	// Reasonable defaults
	if cfg.Tether.Frames == 0 {
		cfg.Tether.Frames = 1
	}
	if cfg.Tether.WaitTimeoutMs == 0 {
		cfg.Tether.WaitTimeoutMs = 2000
	}
	if cfg.Tether.DownloadDir == "" {
		cfg.Tether.DownloadDir = "captures"
	}
	if cfg.Web.ListenAddr == "" {
		cfg.Web.ListenAddr = ":8080"
	}
	if cfg.Camera.FocusDelayMs <= 0 {
		cfg.Camera.FocusDelayMs = 500 // 500ms for autofocus
	}
	if cfg.Camera.ShutterDelayMs <= 0 {
		cfg.Camera.ShutterDelayMs = 200 // 200ms shutter hold
	}

	return &cfg, nil
}

// FocusDelay returns the autofocus delay duration.
func (c *Config) FocusDelay() time.Duration {
	return time.Duration(c.Camera.FocusDelayMs) * time.Millisecond
}

// ShutterDelay returns the shutter hold duration.
func (c *Config) ShutterDelay() time.Duration {
	return time.Duration(c.Camera.ShutterDelayMs) * time.Millisecond
}

// Interval returns the pause between tethered frames.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Tether.IntervalMs) * time.Millisecond
}

// WaitTimeout returns the per-poll event wait budget.
func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.Tether.WaitTimeoutMs) * time.Millisecond
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

// ---------- ValidateConfigPath ----------

func TestValidateConfigPath_Valid(t *testing.T) {
	// Create a real configs/ directory so filepath.Abs resolves correctly.
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "configs")
	if err := os.Mkdir(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, "default.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateConfigPath(path); err != nil {
		t.Errorf("expected valid path, got error: %v", err)
	}
}

func TestValidateConfigPath_PathTraversal(t *testing.T) {
	cases := []string{
		"../../etc/passwd",
		"configs/../../../etc/shadow",
	}
	for _, path := range cases {
		if err := ValidateConfigPath(path); err == nil {
			t.Errorf("expected error for traversal path %q, got nil", path)
		}
	}
}

func TestValidateConfigPath_WrongExtension(t *testing.T) {
	cases := []string{
		"configs/default.json",
		"configs/default.yml",
		"configs/default.txt",
		"configs/default",
	}
	for _, path := range cases {
		if err := ValidateConfigPath(path); err == nil {
			t.Errorf("expected error for extension in %q, got nil", path)
		}
	}
}

func TestValidateConfigPath_NotInConfigsDir(t *testing.T) {
	cases := []string{
		"other/default.yaml",
		"/tmp/default.yaml",
	}
	for _, path := range cases {
		if err := ValidateConfigPath(path); err == nil {
			t.Errorf("expected error for path outside configs/ %q, got nil", path)
		}
	}
}

func TestValidateConfigPath_EmptyPath(t *testing.T) {
	if err := ValidateConfigPath(""); err == nil {
		t.Error("expected error for empty path, got nil")
	}
}

func TestValidateConfigPath_VeryLongPath(t *testing.T) {
	long := "configs/" + strings.Repeat("a", 1000) + ".yaml"
	// Should not panic; error or success is OS-dependent, but must not crash.
	_ = ValidateConfigPath(long)
}

// ---------- Load ----------

// writeConfig creates a temporary configs/ dir with the given YAML content and returns the path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "configs")
	if err := os.Mkdir(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validYAML = `
camera:
  driver: "gpio_remote"
  focus_pin: 24
  shutter_pin: 25
  mock_gpio: true
tether:
  frames: 12
  interval_ms: 1500
  wait_timeout_ms: 3000
  download_dir: "/tmp/shots"
web:
  listen_addr: ":9090"
defaults:
  debug_level: 2
`

func TestLoad_ValidFullConfig(t *testing.T) {
	path := writeConfig(t, validYAML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Camera.Driver != "gpio_remote" {
		t.Errorf("camera.driver = %q, want %q", cfg.Camera.Driver, "gpio_remote")
	}
	if cfg.Camera.FocusPin != 24 {
		t.Errorf("camera.focus_pin = %d, want 24", cfg.Camera.FocusPin)
	}
	if !cfg.Camera.MockGPIO {
		t.Error("camera.mock_gpio = false, want true")
	}
	if cfg.Tether.Frames != 12 {
		t.Errorf("tether.frames = %d, want 12", cfg.Tether.Frames)
	}
	if cfg.Tether.DownloadDir != "/tmp/shots" {
		t.Errorf("tether.download_dir = %q, want %q", cfg.Tether.DownloadDir, "/tmp/shots")
	}
	if cfg.Web.ListenAddr != ":9090" {
		t.Errorf("web.listen_addr = %q, want %q", cfg.Web.ListenAddr, ":9090")
	}
	if cfg.Defaults.DebugLevel != 2 {
		t.Errorf("debug_level = %d, want 2", cfg.Defaults.DebugLevel)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
camera:
  driver: "sim"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tether.Frames != 1 {
		t.Errorf("default tether.frames = %d, want 1", cfg.Tether.Frames)
	}
	if cfg.Tether.WaitTimeoutMs != 2000 {
		t.Errorf("default tether.wait_timeout_ms = %d, want 2000", cfg.Tether.WaitTimeoutMs)
	}
	if cfg.Tether.DownloadDir != "captures" {
		t.Errorf("default tether.download_dir = %q, want %q", cfg.Tether.DownloadDir, "captures")
	}
	if cfg.Web.ListenAddr != ":8080" {
		t.Errorf("default web.listen_addr = %q, want %q", cfg.Web.ListenAddr, ":8080")
	}
	if cfg.Camera.FocusDelayMs != 500 {
		t.Errorf("default camera.focus_delay_ms = %d, want 500", cfg.Camera.FocusDelayMs)
	}
	if cfg.Camera.ShutterDelayMs != 200 {
		t.Errorf("default camera.shutter_delay_ms = %d, want 200", cfg.Camera.ShutterDelayMs)
	}
}

func TestLoad_MissingDriver(t *testing.T) {
	path := writeConfig(t, `
tether:
  frames: 3
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for missing camera.driver, got nil")
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeConfig(t, `
camera:
  driver: "polaroid"
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown camera.driver, got nil")
	}
}

func TestLoad_GPIORemoteRequiresPins(t *testing.T) {
	path := writeConfig(t, `
camera:
  driver: "gpio_remote"
  focus_pin: 24
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for missing shutter_pin, got nil")
	}
}

func TestLoad_NegativeFrames(t *testing.T) {
	path := writeConfig(t, `
camera:
  driver: "sim"
tether:
  frames: -1
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative tether.frames, got nil")
	}
}

func TestLoad_DebugLevelOutOfRange(t *testing.T) {
	for _, level := range []int{-1, 5, 42} {
		path := writeConfig(t, `
camera:
  driver: "sim"
defaults:
  debug_level: `+strconv.Itoa(level)+`
`)
		if _, err := Load(path); err == nil {
			t.Errorf("expected error for debug_level %d, got nil", level)
		}
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "camera: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml, got nil")
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := &Config{
		Camera: CameraConfig{FocusDelayMs: 500, ShutterDelayMs: 200},
		Tether: TetherConfig{IntervalMs: 1500, WaitTimeoutMs: 3000},
	}
	if got := cfg.FocusDelay(); got != 500*time.Millisecond {
		t.Errorf("FocusDelay() = %v, want 500ms", got)
	}
	if got := cfg.ShutterDelay(); got != 200*time.Millisecond {
		t.Errorf("ShutterDelay() = %v, want 200ms", got)
	}
	if got := cfg.Interval(); got != 1500*time.Millisecond {
		t.Errorf("Interval() = %v, want 1.5s", got)
	}
	if got := cfg.WaitTimeout(); got != 3*time.Second {
		t.Errorf("WaitTimeout() = %v, want 3s", got)
	}
}

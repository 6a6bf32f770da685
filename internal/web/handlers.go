package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/cjeanneret/tethergo/internal/debug"
)

// Overrides holds run parameters that can override config defaults.
type Overrides struct {
	Frames        int `json:"frames"`
	IntervalMs    int `json:"interval_ms"`
	WaitTimeoutMs int `json:"wait_timeout_ms"`
}

// ValidateOverrides checks run parameters from the form.
func ValidateOverrides(o Overrides) error {
	if o.Frames < 1 || o.Frames > 10000 {
		return fmt.Errorf("frames must be between 1 and 10000")
	}
	if o.IntervalMs < 0 || o.IntervalMs > 3600_000 {
		return fmt.Errorf("interval_ms must be between 0 and 3600000")
	}
	if o.WaitTimeoutMs < 100 || o.WaitTimeoutMs > 600_000 {
		return fmt.Errorf("wait_timeout_ms must be between 100 and 600000")
	}
	return nil
}

// RunTetherFunc runs a tethered sequence with the given overrides.
// It is called from the POST /run handler in a goroutine.
type RunTetherFunc func(ctx context.Context, overrides Overrides) error

// FormConfig holds default values for the run form (from config).
type FormConfig struct {
	Frames        int    `json:"frames"`
	IntervalMs    int    `json:"interval_ms"`
	WaitTimeoutMs int    `json:"wait_timeout_ms"`
	DownloadDir   string `json:"download_dir"`
	Driver        string `json:"driver"`
}

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	Broadcaster  *StatusBroadcaster
	RunTether   RunTetherFunc
	FormDefaults FormConfig
	runningMu    sync.Mutex
	running      bool
	lastRun      time.Time
	staticFS     fs.FS
}

// maxRunBodyBytes caps the POST /run body size.
const maxRunBodyBytes = 1 << 20

// runCooldown is the minimum delay between two runs.
const runCooldown = 5 * time.Second

// NewHandlers creates handlers with the given dependencies.
// If runTether is nil, POST /run will return 503 Service Unavailable.
func NewHandlers(broadcaster *StatusBroadcaster, runTether RunTetherFunc, formDefaults FormConfig, staticFS fs.FS) *Handlers {
	return &Handlers{
		Broadcaster:  broadcaster,
		RunTether:   runTether,
		FormDefaults: formDefaults,
		staticFS:     staticFS,
	}
}

// HandleConfig returns the form default values (from config) as JSON.
func (h *Handlers) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.FormDefaults)
}

// ServeIndex serves the main HTML page (root path only).
func (h *Handlers) ServeIndex(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.staticFS, "index.html")
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// HandleRun handles POST /run to start a tethered sequence.
func (h *Handlers) HandleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRunBodyBytes)

	var overrides Overrides
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := ValidateOverrides(overrides); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if h.RunTether == nil {
		http.Error(w, "camera not configured", http.StatusServiceUnavailable)
		return
	}

	h.runningMu.Lock()
	if h.running {
		h.runningMu.Unlock()
		http.Error(w, "run already in progress", http.StatusConflict)
		return
	}
	if time.Since(h.lastRun) < runCooldown {
		h.runningMu.Unlock()
		http.Error(w, "too many runs, slow down", http.StatusTooManyRequests)
		return
	}
	h.running = true
	h.lastRun = time.Now()
	h.runningMu.Unlock()

	// Run in goroutine; clear running when done
	go func() {
		defer func() {
			h.runningMu.Lock()
			h.running = false
			h.runningMu.Unlock()
		}()

		ctx := context.Background()
		if err := h.RunTether(ctx, overrides); err != nil {
			h.Broadcaster.Broadcast("error", "Run failed: "+err.Error())
			debug.Error(err)
		} else {
			h.Broadcaster.Broadcast("info", "Run complete")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"status": "started"})
}

// HandleStatusStream handles GET /status/stream for SSE.
func (h *Handlers) HandleStatusStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // nginx

	ch, unsub := h.Broadcaster.Subscribe()
	defer unsub()

	// Send initial comment to establish connection
	w.Write([]byte(": connected\n\n"))
	flusher.Flush()

	// Heartbeat while idle
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			w.Write([]byte("data: " + msg + "\n\n"))
			flusher.Flush()

		case <-ticker.C:
			w.Write([]byte(": heartbeat\n\n"))
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

package ptp

import (
	"fmt"
	"io"
	"time"

	"github.com/cjeanneret/tethergo/internal/debug"
)

// Session is one open, initialized connection to a single camera. It
// exclusively owns its native handle: the handle is valid for the whole
// lifetime of the Session and released exactly once by Close.
//
// A Session is not safe for concurrent use. Callers must serialize
// operations; a single owner per session is the expected pattern.
type Session struct {
	drv  Driver
	h    Handle
	open bool
}

// Open locates and initializes the first detected camera. The open is
// two-phase (allocate handle, then detect and initialize); if the
// second phase fails the already-allocated handle is released before
// the error is returned, so a failed Open never leaks.
func Open(drv Driver, cctx *Context) (*Session, error) {
	h, st := drv.NewSession()
	if err := st.Err(); err != nil {
		return nil, fmt.Errorf("allocate camera session: %w", err)
	}
	if err := drv.InitSession(h, cctx).Err(); err != nil {
		drv.ReleaseSession(h)
		return nil, fmt.Errorf("initialize camera: %w", err)
	}
	debug.Verbose("ptp: session open")
	return &Session{drv: drv, h: h, open: true}, nil
}

// Close releases the native handle. Calling Close more than once is
// safe; only the first call releases.
func (s *Session) Close() {
	if !s.open {
		return
	}
	s.open = false
	s.drv.ReleaseSession(s.h)
	debug.Verbose("ptp: session closed")
}

// CaptureImage instructs the camera to take a picture immediately and
// returns the location of the resulting file on camera storage. A
// failed capture leaves the session usable.
func (s *Session) CaptureImage(cctx *Context) (FilePath, error) {
	var p FilePath
	if err := s.drv.CaptureImage(s.h, &p, cctx).Err(); err != nil {
		return FilePath{}, fmt.Errorf("capture: %w", err)
	}
	debug.Live("ptp: captured %s", p)
	return p, nil
}

// TriggerCapture starts a capture without waiting for completion. The
// resulting file must be discovered through WaitForFile.
func (s *Session) TriggerCapture(cctx *Context) error {
	if err := s.drv.TriggerCapture(s.h, cctx).Err(); err != nil {
		return fmt.Errorf("trigger capture: %w", err)
	}
	debug.Live("ptp: capture triggered")
	return nil
}

// waitOutcome classifies one observed event for the wait loop.
type waitOutcome int

const (
	keepWaiting waitOutcome = iota // unrelated event, poll again
	fileAdded                      // terminal: a new file appeared
	timedOut                       // terminal: no event within budget
)

// WaitForFile blocks until the camera reports a new file or the
// timeout elapses, and returns (nil, nil) in the timeout case. Each
// polling iteration waits with a fresh budget, so a stream of
// unrelated events (property changes and the like, expected noise
// during a capture) can stretch the total wait beyond one timeout;
// stopping overall is the caller's responsibility.
func (s *Session) WaitForFile(cctx *Context, timeout time.Duration) (*FilePath, error) {
	for {
		outcome, path, err := s.pollEvent(cctx, timeout)
		if err != nil {
			return nil, err
		}
		switch outcome {
		case fileAdded:
			return path, nil
		case timedOut:
			return nil, nil
		}
	}
}

// pollEvent performs exactly one native wait and classifies the event.
// The event payload is released before returning on every path,
// including the error path and nil payloads.
func (s *Session) pollEvent(cctx *Context, timeout time.Duration) (waitOutcome, *FilePath, error) {
	evt, data, st := s.drv.WaitForEvent(s.h, int(timeout/time.Millisecond), cctx)
	defer s.drv.FreeEventData(data)
	if err := st.Err(); err != nil {
		return keepWaiting, nil, fmt.Errorf("wait for event: %w", err)
	}
	debug.Event(evt.String())
	switch evt {
	case EventFileAdded:
		path := data.Path // copied out before the payload is released
		return fileAdded, &path, nil
	case EventTimeout:
		return timedOut, nil, nil
	default:
		return keepWaiting, nil, nil
	}
}

// Download streams the bytes of src into dst. Fails if the file no
// longer exists on the camera or the transfer is interrupted.
func (s *Session) Download(cctx *Context, src FilePath, dst io.Writer) error {
	if err := s.drv.GetFile(s.h, src.Folder(), src.Name(), dst, cctx).Err(); err != nil {
		return fmt.Errorf("download %s: %w", src, err)
	}
	return nil
}

// Summary returns the camera's summary text: non-configurable facts
// such as manufacturer and shot count. Returns ErrNotSupported when
// the camera has no summary and ErrCorruptedData when the text is not
// valid UTF-8.
func (s *Session) Summary(cctx *Context) (string, error) {
	var buf TextBuffer
	if err := s.drv.GetSummary(s.h, &buf, cctx).Err(); err != nil {
		return "", fmt.Errorf("summary: %w", err)
	}
	return textToString(&buf)
}

// Manual returns the camera's usage manual text. Errors as for Summary.
func (s *Session) Manual(cctx *Context) (string, error) {
	var buf TextBuffer
	if err := s.drv.GetManual(s.h, &buf, cctx).Err(); err != nil {
		return "", fmt.Errorf("manual: %w", err)
	}
	return textToString(&buf)
}

// AboutDriver returns the driver's notice text (author,
// acknowledgements). Errors as for Summary.
func (s *Session) AboutDriver(cctx *Context) (string, error) {
	var buf TextBuffer
	if err := s.drv.GetAbout(s.h, &buf, cctx).Err(); err != nil {
		return "", fmt.Errorf("about driver: %w", err)
	}
	return textToString(&buf)
}

// Abilities returns the camera's capability record. The native query
// cannot fail for an open session; a failure here means the session
// invariant is broken, so it panics instead of returning an error.
func (s *Session) Abilities() Abilities {
	a, st := s.drv.GetAbilities(s.h)
	if st != StatusOK {
		panic(fmt.Sprintf("ptp: abilities query failed on open session: %s", st))
	}
	return a
}

// PortInfo returns a description of the port the camera is connected
// to. Panics on native failure, as for Abilities.
func (s *Session) PortInfo() PortInfo {
	p, st := s.drv.GetPortInfo(s.h)
	if st != StatusOK {
		panic(fmt.Sprintf("ptp: port info query failed on open session: %s", st))
	}
	return p
}

package ptp

import (
	"fmt"
	"io"
	"unsafe"
)

// EventType classifies an entry in the camera's event stream.
type EventType int

const (
	EventUnknown EventType = iota
	EventTimeout
	EventFileAdded
	EventFolderAdded
	EventCaptureComplete
	EventFileChanged
)

func (e EventType) String() string {
	switch e {
	case EventTimeout:
		return "timeout"
	case EventFileAdded:
		return "file added"
	case EventFolderAdded:
		return "folder added"
	case EventCaptureComplete:
		return "capture complete"
	case EventFileChanged:
		return "file changed"
	default:
		return "unknown"
	}
}

// EventData is the heap payload attached to one event. It is allocated
// by the driver for a single WaitForEvent call and must be handed back
// through FreeEventData exactly once, whatever the event type.
type EventData struct {
	Path FilePath // set for EventFileAdded and EventFolderAdded
	Info string   // free-form driver text for EventUnknown

	// raw is the native allocation backing this payload, if any.
	// Released by Driver.FreeEventData.
	raw unsafe.Pointer
}

// Handle is an opaque native session handle. Meaningful only to the
// driver that issued it.
type Handle uintptr

// Context carries the callback state the native layer reports through:
// progress, status text, and errors. Callers hand the same Context to
// every operation of a session. All fields are optional.
type Context struct {
	OnStatus   func(msg string)
	OnProgress func(done, total int64)
	OnError    func(msg string)
}

// Status invokes the status callback, if set.
func (c *Context) Status(format string, args ...interface{}) {
	if c != nil && c.OnStatus != nil {
		c.OnStatus(fmt.Sprintf(format, args...))
	}
}

// Progress invokes the progress callback, if set.
func (c *Context) Progress(done, total int64) {
	if c != nil && c.OnProgress != nil {
		c.OnProgress(done, total)
	}
}

// Error invokes the error callback, if set.
func (c *Context) Error(format string, args ...interface{}) {
	if c != nil && c.OnError != nil {
		c.OnError(fmt.Sprintf(format, args...))
	}
}

// Driver is the boundary to the native camera layer. Implementations
// report native Status codes and fill caller-provided buffers; all
// translation into domain errors happens in the Session.
//
// A Driver is not required to be safe for concurrent use; the session
// layer never calls it concurrently for the same handle.
type Driver interface {
	// NewSession allocates a native session handle. On success the
	// handle must later be released exactly once via ReleaseSession.
	NewSession() (Handle, Status)

	// InitSession detects and initializes the first connected camera.
	InitSession(h Handle, cctx *Context) Status

	// ReleaseSession frees the native handle. Valid on initialized and
	// uninitialized handles alike.
	ReleaseSession(h Handle)

	// CaptureImage takes a picture and fills out with the location of
	// the new file on camera storage.
	CaptureImage(h Handle, out *FilePath, cctx *Context) Status

	// TriggerCapture starts a capture without waiting for the result.
	TriggerCapture(h Handle, cctx *Context) Status

	// WaitForEvent blocks up to timeoutMs for the next event. The
	// returned payload may be nil; when non-nil it is owned by the
	// driver and must be released through FreeEventData.
	WaitForEvent(h Handle, timeoutMs int, cctx *Context) (EventType, *EventData, Status)

	// FreeEventData releases an event payload. Nil is a valid argument
	// and a no-op.
	FreeEventData(data *EventData)

	// GetFile streams the named file's bytes into dst.
	GetFile(h Handle, folder, name string, dst io.Writer, cctx *Context) Status

	// GetStorageInfo returns a freshly allocated list with one entry
	// per filesystem on the camera. Ownership passes to the caller.
	GetStorageInfo(h Handle, cctx *Context) ([]StorageInfo, Status)

	// Text queries. The driver fills buf and terminates it with NUL.
	GetSummary(h Handle, buf *TextBuffer, cctx *Context) Status
	GetManual(h Handle, buf *TextBuffer, cctx *Context) Status
	GetAbout(h Handle, buf *TextBuffer, cctx *Context) Status

	// Introspection. These cannot fail on an initialized handle.
	GetAbilities(h Handle) (Abilities, Status)
	GetPortInfo(h Handle) (PortInfo, Status)
}

// NewDriver selects a driver implementation by name: "sim" for the
// built-in simulated camera, "gphoto2" for the libgphoto2 binding
// (requires building with the gphoto2 tag).
func NewDriver(kind string) (Driver, error) {
	switch kind {
	case "sim":
		return NewSim(), nil
	case "gphoto2":
		return newGphoto2Driver()
	default:
		return nil, fmt.Errorf("unsupported camera driver: %q", kind)
	}
}

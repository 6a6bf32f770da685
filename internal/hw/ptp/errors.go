package ptp

import "errors"

// Domain errors returned by session operations. Drivers never return
// these directly; they report a Status and the session translates it.
var (
	// ErrNotSupported means the camera or its driver does not provide the
	// requested capability or text. Feature absence, not a fault.
	ErrNotSupported = errors.New("not supported by this camera or driver")

	// ErrCorruptedData means a value was received but failed validation
	// (for example non-UTF-8 summary text).
	ErrCorruptedData = errors.New("corrupted data received from camera")

	// ErrDevice covers native and transport failures: camera busy,
	// disconnected, rejected request, protocol timeout reported as an
	// error. Possibly retryable by the caller; the session never retries.
	ErrDevice = errors.New("camera device error")

	// ErrUnknown is the conservative fallback for native status codes the
	// translator does not recognize.
	ErrUnknown = errors.New("unknown camera error")
)

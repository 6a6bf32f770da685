package ptp

import "fmt"

// Status is a native result code as reported by the camera driver.
// The numeric values mirror the libgphoto2 result codes so the cgo
// driver can pass them through unchanged.
type Status int

// Native result codes.
const (
	StatusOK Status = 0

	// Port / transport level.
	StatusError         Status = -1
	StatusBadParameters Status = -2
	StatusNoMemory      Status = -3
	StatusLibrary       Status = -4
	StatusUnknownPort   Status = -5
	StatusNotSupported  Status = -6
	StatusIO            Status = -7
	StatusTimeout       Status = -10

	// Camera level.
	StatusCorruptedData     Status = -102
	StatusFileExists        Status = -103
	StatusModelNotFound     Status = -105
	StatusDirectoryNotFound Status = -107
	StatusFileNotFound      Status = -108
	StatusDirectoryExists   Status = -109
	StatusCameraBusy        Status = -110
	StatusPathNotAbsolute   Status = -111
	StatusCancel            Status = -112
	StatusCameraError       Status = -113
	StatusOSFailure         Status = -114
	StatusNoSpace           Status = -115
)

// String returns a short description of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "generic error"
	case StatusBadParameters:
		return "bad parameters"
	case StatusNoMemory:
		return "out of memory"
	case StatusLibrary:
		return "driver library error"
	case StatusUnknownPort:
		return "unknown port"
	case StatusNotSupported:
		return "not supported"
	case StatusIO:
		return "I/O error"
	case StatusTimeout:
		return "timeout"
	case StatusCorruptedData:
		return "corrupted data"
	case StatusFileExists:
		return "file exists"
	case StatusModelNotFound:
		return "model not found"
	case StatusDirectoryNotFound:
		return "directory not found"
	case StatusFileNotFound:
		return "file not found"
	case StatusDirectoryExists:
		return "directory exists"
	case StatusCameraBusy:
		return "camera busy"
	case StatusPathNotAbsolute:
		return "path not absolute"
	case StatusCancel:
		return "operation cancelled"
	case StatusCameraError:
		return "camera reported an error"
	case StatusOSFailure:
		return "OS failure"
	case StatusNoSpace:
		return "no space on storage"
	default:
		return fmt.Sprintf("status %d", int(s))
	}
}

// Err translates the status into a domain error. The mapping is total:
// StatusOK yields nil, unrecognized codes yield ErrUnknown, everything
// else resolves to one of the domain errors. It never panics.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusNotSupported:
		return ErrNotSupported
	case StatusCorruptedData:
		return ErrCorruptedData
	case StatusError, StatusBadParameters, StatusNoMemory, StatusLibrary,
		StatusUnknownPort, StatusIO, StatusTimeout,
		StatusFileExists, StatusModelNotFound, StatusDirectoryNotFound,
		StatusFileNotFound, StatusDirectoryExists, StatusCameraBusy,
		StatusPathNotAbsolute, StatusCancel, StatusCameraError,
		StatusOSFailure, StatusNoSpace:
		return fmt.Errorf("%w: %s", ErrDevice, s)
	default:
		return fmt.Errorf("%w (status %d)", ErrUnknown, int(s))
	}
}

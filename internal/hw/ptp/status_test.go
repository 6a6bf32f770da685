package ptp

import (
	"errors"
	"strings"
	"testing"
)

func TestStatusErr_Mapping(t *testing.T) {
	cases := []struct {
		status Status
		want   error
	}{
		{StatusNotSupported, ErrNotSupported},
		{StatusCorruptedData, ErrCorruptedData},
		{StatusError, ErrDevice},
		{StatusBadParameters, ErrDevice},
		{StatusNoMemory, ErrDevice},
		{StatusLibrary, ErrDevice},
		{StatusUnknownPort, ErrDevice},
		{StatusIO, ErrDevice},
		{StatusTimeout, ErrDevice},
		{StatusFileExists, ErrDevice},
		{StatusModelNotFound, ErrDevice},
		{StatusDirectoryNotFound, ErrDevice},
		{StatusFileNotFound, ErrDevice},
		{StatusDirectoryExists, ErrDevice},
		{StatusCameraBusy, ErrDevice},
		{StatusPathNotAbsolute, ErrDevice},
		{StatusCancel, ErrDevice},
		{StatusCameraError, ErrDevice},
		{StatusOSFailure, ErrDevice},
		{StatusNoSpace, ErrDevice},
	}
	for _, tc := range cases {
		if err := tc.status.Err(); !errors.Is(err, tc.want) {
			t.Errorf("%s (%d): err = %v, want %v", tc.status, int(tc.status), err, tc.want)
		}
	}
}

func TestStatusErr_OKIsNil(t *testing.T) {
	if err := StatusOK.Err(); err != nil {
		t.Errorf("StatusOK.Err() = %v, want nil", err)
	}
}

func TestStatusErr_UnrecognizedCodeIsTotal(t *testing.T) {
	// The mapping must be total: any code the translator has never seen
	// resolves to ErrUnknown instead of panicking or dropping the error.
	for _, code := range []Status{-9999, -42, 17} {
		err := code.Err()
		if !errors.Is(err, ErrUnknown) {
			t.Errorf("Status(%d).Err() = %v, want ErrUnknown", int(code), err)
		}
		if !strings.Contains(err.Error(), "status") {
			t.Errorf("error %q should carry the raw code", err)
		}
	}
}

func TestStatusString_Unrecognized(t *testing.T) {
	if s := Status(-777).String(); !strings.Contains(s, "-777") {
		t.Errorf("String() = %q, want raw code included", s)
	}
}

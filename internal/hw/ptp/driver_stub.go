//go:build !gphoto2

package ptp

import "errors"

// Placeholder used when the binary is built without the gphoto2 tag.
func newGphoto2Driver() (Driver, error) {
	return nil, errors.New("this build has no libgphoto2 support (rebuild with -tags gphoto2)")
}

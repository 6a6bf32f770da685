package camera

import (
	"github.com/cjeanneret/tethergo/internal/hw/ptp"
)

// Camera is the high-level interface for anything that can be told to
// take one picture, regardless of how it is controlled (PTP session,
// GPIO cable release, network protocol, etc.).
type Camera interface {
	// Shoot triggers a single photo capture.
	Shoot() error
}

// Tethered adapts an open PTP session to the Camera interface. The
// resulting file stays on the camera's storage; use the session's
// WaitForFile/Download operations to retrieve it.
type Tethered struct {
	sess *ptp.Session
	cctx *ptp.Context
}

// NewTethered wraps an open session. The context is handed to every
// capture call and may be nil.
func NewTethered(sess *ptp.Session, cctx *ptp.Context) *Tethered {
	return &Tethered{sess: sess, cctx: cctx}
}

// Shoot performs a synchronous capture and discards the reported file
// location.
func (t *Tethered) Shoot() error {
	_, err := t.sess.CaptureImage(t.cctx)
	return err
}

package tether

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cjeanneret/tethergo/internal/debug"
	"github.com/cjeanneret/tethergo/internal/hw/camera"
	"github.com/cjeanneret/tethergo/internal/hw/ptp"
)

// Station is the part of a camera session a tethered run needs:
// fire the shutter, learn where the file landed, pull it down.
// *ptp.Session satisfies it.
type Station interface {
	TriggerCapture(cctx *ptp.Context) error
	WaitForFile(cctx *ptp.Context, timeout time.Duration) (*ptp.FilePath, error)
	Download(cctx *ptp.Context, src ptp.FilePath, dst io.Writer) error
}

// Sequence contains high-level logic for tethered shooting
// (single shots, timed series, download handling).
type Sequence struct {
	station Station
	cctx    *ptp.Context

	// OnFrame, when set, is called after each frame has been downloaded.
	OnFrame func(frame, total int, localPath string)
}

func NewSequence(s Station, cctx *ptp.Context) *Sequence {
	return &Sequence{
		station: s,
		cctx:    cctx,
	}
}

// Params defines the parameters for a tethered run.
type Params struct {
	Frames      int           // number of frames to shoot
	Interval    time.Duration // pause between frames
	WaitTimeout time.Duration // event wait budget per frame
	OutputDir   string        // where downloaded files land
}

// Run shoots Frames frames, waiting for each file to appear on the
// camera and downloading it into OutputDir before the next frame.
// The camera keeps its copy of every file.
func (s *Sequence) Run(ctx context.Context, p Params) error {
	if p.Frames <= 0 {
		return fmt.Errorf("frames must be > 0, got %d", p.Frames)
	}
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	debug.Section("Tethered Run")
	debug.Value("frames", p.Frames)
	debug.Value("interval", p.Interval)
	debug.Value("output", p.OutputDir)

	for frame := 1; frame <= p.Frames; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if frame > 1 && p.Interval > 0 {
			time.Sleep(p.Interval)
		}

		debug.Shot(frame, p.Frames)
		if err := s.station.TriggerCapture(s.cctx); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		path, err := s.station.WaitForFile(s.cctx, p.WaitTimeout)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		if path == nil {
			return fmt.Errorf("frame %d: no file within %v", frame, p.WaitTimeout)
		}

		local, err := s.download(*path, p.OutputDir)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		if s.OnFrame != nil {
			s.OnFrame(frame, p.Frames, local)
		}
	}

	return nil
}

// download pulls one camera file into dir, keeping the camera's file name.
func (s *Sequence) download(src ptp.FilePath, dir string) (string, error) {
	local := filepath.Join(dir, src.Name())
	f, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", local, err)
	}
	if err := s.station.Download(s.cctx, src, f); err != nil {
		f.Close()
		os.Remove(local)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", local, err)
	}
	if info, err := os.Stat(local); err == nil {
		debug.Download(local, info.Size())
	}
	return local, nil
}

// RunShots fires a plain interval series on any camera, with no
// event wait and no download. Used for the cable release path, where
// files stay on the card.
func RunShots(ctx context.Context, cam camera.Camera, frames int, interval time.Duration) error {
	if frames <= 0 {
		return fmt.Errorf("frames must be > 0, got %d", frames)
	}

	for frame := 1; frame <= frames; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if frame > 1 && interval > 0 {
			time.Sleep(interval)
		}

		debug.Shot(frame, frames)
		if err := cam.Shoot(); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
	}

	return nil
}

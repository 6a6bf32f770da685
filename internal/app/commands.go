package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cjeanneret/tethergo/internal/config"
	"github.com/cjeanneret/tethergo/internal/logic/tether"
	"github.com/cjeanneret/tethergo/internal/ui"
)

// NewCaptureCommand shoots a single frame.
func NewCaptureCommand() *cobra.Command {
	var download bool

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Take one picture",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// The cable release path has no file events and no download.
			if cfg.Camera.Driver == "gpio_remote" {
				cam, err := newCableRelease(cfg)
				if err != nil {
					return err
				}
				if err := cam.Shoot(); err != nil {
					return err
				}
				fmt.Println(ui.OK("shutter released"))
				return nil
			}

			cctx := newContext()
			sess, err := openSession(cfg, cctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			path, err := sess.CaptureImage(cctx)
			if err != nil {
				return err
			}
			fmt.Println(ui.OK("captured %s", path))

			if !download {
				return nil
			}
			if err := os.MkdirAll(cfg.Tether.DownloadDir, 0o755); err != nil {
				return err
			}
			local := filepath.Join(cfg.Tether.DownloadDir, path.Name())
			f, err := os.Create(local)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := sess.Download(cctx, path, f); err != nil {
				os.Remove(local)
				return err
			}
			fmt.Println(ui.OK("downloaded %s", local))
			return nil
		},
	}

	cmd.Flags().BoolVar(&download, "download", false, "download the new file from the camera")
	return cmd
}

// NewTetherCommand runs a tethered series: trigger, wait for the file,
// download, repeat.
func NewTetherCommand() *cobra.Command {
	var frames int
	var intervalMs int

	cmd := &cobra.Command{
		Use:   "tether",
		Short: "Run a tethered series with automatic download",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Camera.Driver == "gpio_remote" {
				return runCableSeries(cmd, cfg, frames, intervalMs)
			}

			cctx := newContext()
			sess, err := openSession(cfg, cctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			p := tether.Params{
				Frames:      cfg.Tether.Frames,
				Interval:    cfg.Interval(),
				WaitTimeout: cfg.WaitTimeout(),
				OutputDir:   cfg.Tether.DownloadDir,
			}
			if cmd.Flags().Changed("frames") {
				p.Frames = frames
			}
			if cmd.Flags().Changed("interval") {
				p.Interval = msDuration(intervalMs)
			}

			seq := tether.NewSequence(sess, cctx)
			seq.OnFrame = func(frame, total int, localPath string) {
				fmt.Println(ui.OK("frame %d/%d: %s", frame, total, localPath))
			}
			return seq.Run(cmd.Context(), p)
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 1, "number of frames to shoot")
	cmd.Flags().IntVar(&intervalMs, "interval", 0, "pause between frames in milliseconds")
	return cmd
}

// runCableSeries fires an interval series over the cable release.
// Files stay on the camera card.
func runCableSeries(cmd *cobra.Command, cfg *config.Config, frames, intervalMs int) error {
	cam, err := newCableRelease(cfg)
	if err != nil {
		return err
	}
	n := cfg.Tether.Frames
	interval := cfg.Interval()
	if cmd.Flags().Changed("frames") {
		n = frames
	}
	if cmd.Flags().Changed("interval") {
		interval = msDuration(intervalMs)
	}
	if err := tether.RunShots(cmd.Context(), cam, n, interval); err != nil {
		return err
	}
	fmt.Println(ui.OK("%d frames shot, files remain on the card", n))
	return nil
}

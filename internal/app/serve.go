package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cjeanneret/tethergo/internal/debug"
	"github.com/cjeanneret/tethergo/internal/logic/tether"
	"github.com/cjeanneret/tethergo/internal/web"
)

// NewServeCommand starts the web monitor. Runs are started from the
// browser and progress streams back over SSE.
func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web interface for remote tethering",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			broadcaster := web.NewStatusBroadcaster()

			// Mirror the debug log into the SSE stream so the browser
			// sees the same thing as the terminal.
			debug.SetOutput(io.MultiWriter(os.Stderr, web.BroadcastWriter(broadcaster)))

			runTether := func(ctx context.Context, o web.Overrides) error {
				cctx := newContext()
				cctx.OnStatus = func(msg string) {
					debug.Live("camera: %s", msg)
					broadcaster.BroadcastMsg(msg)
				}

				sess, err := openSession(cfg, cctx)
				if err != nil {
					return err
				}
				defer sess.Close()

				seq := tether.NewSequence(sess, cctx)
				seq.OnFrame = broadcaster.BroadcastFrame
				return seq.Run(ctx, tether.Params{
					Frames:      o.Frames,
					Interval:    msDuration(o.IntervalMs),
					WaitTimeout: msDuration(o.WaitTimeoutMs),
					OutputDir:   cfg.Tether.DownloadDir,
				})
			}

			formDefaults := web.FormConfig{
				Frames:        cfg.Tether.Frames,
				IntervalMs:    cfg.Tether.IntervalMs,
				WaitTimeoutMs: cfg.Tether.WaitTimeoutMs,
				DownloadDir:   cfg.Tether.DownloadDir,
				Driver:        cfg.Camera.Driver,
			}

			listen := cfg.Web.ListenAddr
			if addr != "" {
				listen = addr
			}

			srv, err := web.NewServer(listen, broadcaster, runTether, formDefaults)
			if err != nil {
				return err
			}
			fmt.Printf("listening on %s\n", listen)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config web.listen_addr)")
	return cmd
}

package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cjeanneret/tethergo/internal/hw/ptp"
	"github.com/cjeanneret/tethergo/internal/ui"
)

// NewInfoCommand prints what the camera says about itself.
func NewInfoCommand() *cobra.Command {
	var showManual bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show camera model, capabilities, and driver details",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cctx := newContext()
			sess, err := openSession(cfg, cctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			ab := sess.Abilities()
			port := sess.PortInfo()

			fmt.Println(ui.Title("Camera"))
			fmt.Println(ui.KV("Model", ab.Model))
			fmt.Println(ui.KV("Driver maturity", ab.Maturity))
			fmt.Println(ui.KV("Operations", ab.Ops))
			fmt.Println(ui.KV("File operations", ab.FileOps))
			fmt.Println(ui.KV("Port", fmt.Sprintf("%s (%s)", port.Name, port.Path)))

			if summary, err := sess.Summary(cctx); err == nil {
				fmt.Println()
				fmt.Println(ui.Title("Summary"))
				fmt.Println(summary)
			} else if !errors.Is(err, ptp.ErrNotSupported) {
				return err
			}

			if about, err := sess.AboutDriver(cctx); err == nil {
				fmt.Println()
				fmt.Println(ui.Title("Driver"))
				fmt.Println(about)
			} else if !errors.Is(err, ptp.ErrNotSupported) {
				return err
			}

			if showManual {
				manual, err := sess.Manual(cctx)
				switch {
				case err == nil:
					fmt.Println()
					fmt.Println(ui.Title("Manual"))
					fmt.Println(manual)
				case errors.Is(err, ptp.ErrNotSupported):
					fmt.Println(ui.Warn("this camera ships no manual text"))
				default:
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showManual, "manual", false, "also print the driver manual text")
	return cmd
}

// NewStorageCommand lists the camera's storage media.
func NewStorageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "storage",
		Short: "List camera storage media and free space",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cctx := newContext()
			sess, err := openSession(cfg, cctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			media, err := sess.Storage(cctx)
			if err != nil {
				return err
			}
			if len(media) == 0 {
				fmt.Println(ui.Warn("no storage reported, is a card inserted?"))
				return nil
			}

			for i, m := range media {
				fmt.Println(ui.Title(fmt.Sprintf("Storage %d", i+1)))
				fmt.Println(ui.KV("Label", m.Label))
				fmt.Println(ui.KV("Description", m.Description))
				fmt.Println(ui.KV("Base dir", m.BaseDir))
				fmt.Println(ui.KV("Kind", m.Kind))
				fmt.Println(ui.KV("Access", m.Access))
				fmt.Println(ui.KV("Capacity", fmt.Sprintf("%d KB", m.CapacityKB)))
				fmt.Println(ui.KV("Free", fmt.Sprintf("%d KB", m.FreeKB)))
				fmt.Println(ui.KV("Free images", m.FreeImages))
				if i < len(media)-1 {
					fmt.Println()
				}
			}
			return nil
		},
	}
}

// NewDownloadCommand pulls one named file off the camera.
func NewDownloadCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "download [folder] [name]",
		Short: "Download one file from camera storage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cctx := newContext()
			sess, err := openSession(cfg, cctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			dir := cfg.Tether.DownloadDir
			if outDir != "" {
				dir = outDir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			src := ptp.NewFilePath(args[0], args[1])
			local := filepath.Join(dir, src.Name())
			f, err := os.Create(local)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := sess.Download(cctx, src, f); err != nil {
				os.Remove(local)
				return err
			}
			fmt.Println(ui.OK("downloaded %s", local))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default: config download_dir)")
	return cmd
}

package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cjeanneret/tethergo/internal/doctor"
	"github.com/cjeanneret/tethergo/internal/ui"
)

// NewDoctorCommand checks the host before a shoot: disk room for
// downloads, memory, and basic machine facts.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the host for tethering readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			r := doctor.Collect(cfg.Tether.DownloadDir)

			fmt.Println(ui.Title("Host"))
			fmt.Println(ui.KV("Hostname", r.Hostname))
			fmt.Println(ui.KV("OS", fmt.Sprintf("%s (%s)", r.OS, r.Platform)))
			fmt.Println(ui.KV("Uptime", (time.Duration(r.UptimeSec) * time.Second).String()))
			fmt.Println()
			fmt.Println(ui.Title("Resources"))
			fmt.Println(ui.KV("Memory", fmt.Sprintf("%s / %s (%.0f%%)",
				doctor.FormatBytes(r.MemUsed), doctor.FormatBytes(r.MemTotal), r.MemPercent)))
			fmt.Println(ui.KV("Downloads to", r.DiskPath))
			fmt.Println(ui.KV("Disk free", doctor.FormatBytes(r.DiskFree)))

			if len(r.Warnings) == 0 {
				fmt.Println()
				fmt.Println(ui.OK("ready to shoot"))
				return nil
			}
			fmt.Println()
			for _, w := range r.Warnings {
				fmt.Println(ui.Warn("%s", w))
			}
			return nil
		},
	}
}

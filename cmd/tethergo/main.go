package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cjeanneret/tethergo/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "tethergo",
	Short: "Tethered camera control from the command line",
	Long:  "TetherGo drives a PTP camera over USB: capture, tethered series with automatic download, storage inspection, and a small web interface.",
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().String("config", filepath.Join("configs", "default.yaml"), "path to config file")
	rootCmd.AddCommand(
		app.NewCaptureCommand(),
		app.NewTetherCommand(),
		app.NewInfoCommand(),
		app.NewStorageCommand(),
		app.NewDownloadCommand(),
		app.NewDoctorCommand(),
		app.NewServeCommand(),
	)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "media-picker",
	Short: "Pick photos and videos and normalize them for a host application",
	Long: `Media Picker lets a user choose photos and videos and hands them back in a
uniform shape: photos are downscaled to fit 1080 pixels and re-encoded as
JPEG or PNG, either inline as base64 or as files in the temp directory.
Videos are passed through by location or inlined as base64.

Examples:
  media-picker present --dialog --max 5 --base64
  media-picker present --jpeg photo.heic.jpg holiday.mp4
  media-picker present --config '{"mediaType":"IMAGE","min":1,"max":3}' --dialog
  media-picker cleanup
  media-picker serve`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(presentCmd, cleanupCmd, serveCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		os.Exit(1)
	}
}

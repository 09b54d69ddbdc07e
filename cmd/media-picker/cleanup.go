package main

import (
	"fmt"

	"media-picker/internal/picker"
	"media-picker/internal/session"
	"media-picker/internal/startup"

	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove every temp file created by the picker",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := startup.LoadConfig(true)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		a, err := newApp(config, picker.NewStatic())
		if err != nil {
			return err
		}
		defer a.close()

		var resp session.Response
		a.plugin.Dispatch(cmd.Context(), session.ActionCleanup, nil, func(r session.Response) {
			resp = r
		})
		return writeResponse(cmd.OutOrStdout(), resp)
	},
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"media-picker/internal/encoder"
	"media-picker/internal/normalizer"
	"media-picker/internal/picker"
	"media-picker/internal/resize"
	"media-picker/internal/session"
	"media-picker/internal/startup"
	"media-picker/internal/tempfiles"

	"golang.org/x/term"
)

// exitError carries the process exit status of a failed command. The wire
// error code doubles as the exit status.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("command failed with code %d", e.code)
}

// app holds the components shared by every subcommand.
type app struct {
	config  *startup.Config
	temp    *tempfiles.Manager
	resizer *resize.Resizer
	plugin  *session.Plugin
}

// newApp builds the plugin around p from config. The vectorized strategy
// starts libvips; callers must call close.
func newApp(config *startup.Config, p picker.Picker) (*app, error) {
	var vipsErr error
	if config.VipsEnabled {
		vipsErr = resize.InitVips()
	}
	startup.LogResizerInit(config.ResizeStrategy, config.MaxDimension, vipsErr)

	r, err := resize.New(config.ResizeStrategy, config.MaxDimension)
	if err != nil {
		return nil, err
	}

	temp := tempfiles.NewManager(config.TempDir, config.OwnerPrefix)
	enc := encoder.New(temp, config.JPEGQuality)

	return &app{
		config:  config,
		temp:    temp,
		resizer: r,
		plugin:  session.New(p, normalizer.New(r, enc), temp),
	}, nil
}

func (a *app) close() {
	if a.config.VipsEnabled {
		resize.ShutdownVips()
	}
}

// writeResponse prints the bridge payload of resp to w, indented when w is a
// terminal, and converts failures into an exitError.
func writeResponse(w io.Writer, resp session.Response) error {
	enc := json.NewEncoder(w)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(resp.Payload()); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	if !resp.OK() {
		return &exitError{code: int(resp.Error.Code)}
	}
	return nil
}

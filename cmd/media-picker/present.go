package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"media-picker/internal/pickconfig"
	"media-picker/internal/picker"
	"media-picker/internal/session"
	"media-picker/internal/startup"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var presentFlags struct {
	files           []string
	dialog          bool
	title           string
	configJSON      string
	mediaType       string
	startOnScreen   string
	minItems        int
	maxItems        int
	maxCountMessage string
	buttonText      string
	asBase64        bool
	asJpeg          bool
}

var presentCmd = &cobra.Command{
	Use:   "present [files...]",
	Short: "Pick media and print the normalized results as JSON",
	Long: `Present runs one pick session. Files come from the arguments and --file, or
from a native file dialog with --dialog. The configuration is built from
--config and then overridden by individual flags.

On success the result array is printed. On failure the {code, message}
object is printed and the process exits with the error code.`,
	RunE: runPresent,
}

func init() {
	f := presentCmd.Flags()
	f.StringArrayVarP(&presentFlags.files, "file", "f", nil, "File to pick (repeatable)")
	f.BoolVar(&presentFlags.dialog, "dialog", false, "Pick with a native file dialog")
	f.StringVar(&presentFlags.title, "title", picker.DefaultDialogTitle, "Dialog title")
	f.StringVarP(&presentFlags.configJSON, "config", "c", "", "Picker configuration as a JSON object")
	f.StringVar(&presentFlags.mediaType, "media-type", "", "IMAGE, VIDEO or BOTH")
	f.StringVar(&presentFlags.startOnScreen, "start-on-screen", "", "IMAGE, VIDEO or LIBRARY")
	f.IntVar(&presentFlags.minItems, "min", pickconfig.DefaultMinItems, "Minimum number of items")
	f.IntVar(&presentFlags.maxItems, "max", pickconfig.DefaultMaxItems, "Maximum number of items")
	f.StringVar(&presentFlags.maxCountMessage, "max-count-message", "", "Warning shown when too many items are selected")
	f.StringVar(&presentFlags.buttonText, "button-text", "", "Confirm button label")
	f.BoolVar(&presentFlags.asBase64, "base64", false, "Return results inline as base64")
	f.BoolVar(&presentFlags.asJpeg, "jpeg", false, "Encode photos as JPEG instead of PNG")
}

// flagKeys maps configuration flags to their option keys.
var flagKeys = []struct{ flag, key string }{
	{"media-type", pickconfig.KeyMediaType},
	{"start-on-screen", pickconfig.KeyStartOnScreen},
	{"min", pickconfig.KeyMin},
	{"max", pickconfig.KeyMax},
	{"max-count-message", pickconfig.KeyMaxCountMessage},
	{"button-text", pickconfig.KeyButtonText},
	{"base64", pickconfig.KeyAsBase64},
	{"jpeg", pickconfig.KeyAsJpeg},
}

func runPresent(cmd *cobra.Command, args []string) error {
	raw, err := buildRawConfig(presentFlags.configJSON, cmd.Flags())
	if err != nil {
		return err
	}

	config, err := startup.LoadConfig(true)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	files := append(append([]string{}, presentFlags.files...), args...)

	var p picker.Picker
	if presentFlags.dialog {
		if len(files) > 0 {
			return fmt.Errorf("--dialog cannot be combined with files")
		}
		d := picker.NewDialog()
		d.Title = presentFlags.title
		p = d
	} else {
		p = picker.NewStatic(files...)
	}

	a, err := newApp(config, p)
	if err != nil {
		return err
	}
	defer a.close()

	var resp session.Response
	a.plugin.Dispatch(cmd.Context(), session.ActionPresent, []interface{}{raw}, func(r session.Response) {
		resp = r
	})
	return writeResponse(cmd.OutOrStdout(), resp)
}

// buildRawConfig decodes configJSON and applies every flag the user set on
// top of it. With neither given the empty map selects every default.
func buildRawConfig(configJSON string, flags *pflag.FlagSet) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	if configJSON != "" {
		dec := json.NewDecoder(bytes.NewReader([]byte(configJSON)))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid --config: %w", err)
		}
		if raw == nil {
			raw = map[string]interface{}{}
		}
	}

	for _, o := range flagKeys {
		if !flags.Changed(o.flag) {
			continue
		}
		f := flags.Lookup(o.flag)
		switch f.Value.Type() {
		case "int":
			v, _ := flags.GetInt(o.flag)
			raw[o.key] = v
		case "bool":
			v, _ := flags.GetBool(o.flag)
			raw[o.key] = v
		default:
			raw[o.key] = f.Value.String()
		}
	}

	return raw, nil
}

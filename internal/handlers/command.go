package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"media-picker/internal/logging"
	"media-picker/internal/pickconfig"
	"media-picker/internal/session"

	"github.com/gorilla/mux"
)

// maxCommandBody bounds the size of a command request body.
const maxCommandBody = 1 << 20

// Command runs the action named in the route against the plugin and writes
// the bridge payload of its response. The body is either a JSON array of
// positional arguments or a single value used as the first argument.
func (h *Handlers) Command(w http.ResponseWriter, r *http.Request) {
	action := mux.Vars(r)["action"]

	args, err := decodeArgs(http.MaxBytesReader(w, r.Body, maxCommandBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		logging.Debug("Rejected %s command body: %v", action, err)
		writeResponse(w, session.Failure(&pickconfig.ValidationError{Message: "Request body is not valid JSON"}))
		return
	}

	var resp session.Response
	h.plugin.Dispatch(r.Context(), action, args, func(res session.Response) {
		resp = res
	})
	writeResponse(w, resp)
}

// decodeArgs reads the argument list of a command. Numbers are kept as
// json.Number so integer options survive without float conversion.
func decodeArgs(body io.Reader) ([]interface{}, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON value")
	}

	if args, ok := v.([]interface{}); ok {
		return args, nil
	}
	return []interface{}{v}, nil
}

func statusFor(resp session.Response) int {
	if resp.OK() {
		return http.StatusOK
	}
	switch resp.Error.Code {
	case session.CodeUnsupportedAction:
		return http.StatusNotFound
	case session.CodeWrongJSONObject:
		return http.StatusBadRequest
	case session.CodePickerCanceled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeResponse(w http.ResponseWriter, resp session.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusFor(resp))
	writeJSON(w, resp.Payload())
}

package session

import (
	"errors"
	"strconv"

	"media-picker/internal/pickconfig"
)

// ErrorCode is the numeric error code reported to the host.
type ErrorCode int

// Wire error codes.
const (
	CodeUnsupportedAction ErrorCode = 1
	CodeWrongJSONObject   ErrorCode = 2
	CodePickerCanceled    ErrorCode = 3
	CodeUnknownError      ErrorCode = 10
)

func (c ErrorCode) String() string {
	return strconv.Itoa(int(c))
}

var (
	// ErrPickCanceled reports that the user dismissed the picker.
	ErrPickCanceled = errors.New("picker canceled")
	// ErrUnsupportedAction reports an unknown command name.
	ErrUnsupportedAction = errors.New("unsupported action")
)

// CodeFor maps an error to its wire code.
func CodeFor(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrUnsupportedAction):
		return CodeUnsupportedAction
	case errors.Is(err, pickconfig.ErrInvalidConfig):
		return CodeWrongJSONObject
	case errors.Is(err, ErrPickCanceled):
		return CodePickerCanceled
	default:
		return CodeUnknownError
	}
}

// messageFor returns the host-facing message for err. Cancellation carries
// no message.
func messageFor(err error) string {
	var verr *pickconfig.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, ErrPickCanceled):
		return ""
	default:
		return err.Error()
	}
}

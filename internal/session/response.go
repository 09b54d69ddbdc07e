package session

import "media-picker/internal/media"

// Status tags a Response.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// ErrorPayload is the error body delivered to the host.
type ErrorPayload struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Response is delivered once per command through its callback.
type Response struct {
	Status  Status         `json:"status"`
	Results []media.Result `json:"results,omitempty"`
	Error   *ErrorPayload  `json:"error,omitempty"`
}

// Callback receives the Response of a command.
type Callback func(Response)

// Success returns an OK response carrying results.
func Success(results []media.Result) Response {
	return Response{Status: StatusOK, Results: results}
}

// Ack returns an OK response without payload.
func Ack() Response {
	return Response{Status: StatusOK}
}

// Failure returns the error response for err.
func Failure(err error) Response {
	return Response{
		Status: StatusError,
		Error:  &ErrorPayload{Code: CodeFor(err), Message: messageFor(err)},
	}
}

// OK reports whether the response is a success.
func (r Response) OK() bool {
	return r.Status == StatusOK
}

// Payload returns the value a bridge sends to the host: the result array on
// success (nil for acknowledgments) or the {code, message} object.
func (r Response) Payload() interface{} {
	if r.Status == StatusError {
		return r.Error
	}
	if r.Results == nil {
		return nil
	}
	return r.Results
}

package bankapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// RequestError is returned for every failed call: transport failures
// (Status 0) and non-2xx responses alike.
type RequestError struct {
	Method string
	Path   string
	Status int
	// Message is the server's "message" field when present, otherwise a
	// transport-level description.
	Message string
	// FromServer reports whether Message came from the response body.
	FromServer bool
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the server answered 404.
func (e *RequestError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

func newStatusError(method, path string, status int, body []byte) *RequestError {
	re := &RequestError{Method: method, Path: path, Status: status}
	if msg := gjson.GetBytes(body, "message"); msg.Type == gjson.String && msg.String() != "" {
		re.Message = msg.String()
		re.FromServer = true
		return re
	}
	re.Message = fmt.Sprintf("Request failed with status code %d", status)
	return re
}

func newTransportError(method, path string, err error) *RequestError {
	return &RequestError{Method: method, Path: path, Message: err.Error(), Err: err}
}

// MessageOf returns the text a page shows for err: the server message when
// the API supplied one, the transport message otherwise.
func MessageOf(err error) string {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Message
	}
	return err.Error()
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.NotFound()
}

// Package httperr provides HTTP errors with status codes for API handlers.
package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is an HTTP error with a status code and client-facing message.
// It implements the error interface and can be returned from API handlers
// to send appropriate HTTP status codes to clients.
type Error struct {
	Code    int    // HTTP status code (e.g., 400, 404, 500)
	Message string // Error message to return to client
	Err     error  // Optional underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code for this error.
func (e *Error) StatusCode() int {
	return e.Code
}

// Write sends the error to the client as a JSON body {"error": message}.
// The underlying error is never exposed.
func (e *Error) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(map[string]string{"error": e.Message})
}

// BadRequest creates a 400 Bad Request error.
// Use this when the client sent invalid data.
func BadRequest(err error) *Error {
	msg := "bad request"
	if err != nil {
		msg = err.Error()
	}
	return &Error{Code: 400, Message: msg, Err: err}
}

// BadRequestf creates a 400 Bad Request error with a formatted message.
func BadRequestf(format string, args ...any) *Error {
	return &Error{Code: 400, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a 404 Not Found error.
// Use this when the requested resource doesn't exist.
func NotFound(message ...string) *Error {
	msg := "not found"
	if len(message) > 0 {
		msg = message[0]
	}
	return &Error{Code: 404, Message: msg}
}

// Conflict creates a 409 Conflict error.
// Use this when the request conflicts with the current state.
func Conflict(message ...string) *Error {
	msg := "conflict"
	if len(message) > 0 {
		msg = message[0]
	}
	return &Error{Code: 409, Message: msg}
}

// UnprocessableEntity creates a 422 Unprocessable Entity error.
// Use this for validation errors on semantically correct but invalid data.
func UnprocessableEntity(message ...string) *Error {
	msg := "unprocessable entity"
	if len(message) > 0 {
		msg = message[0]
	}
	return &Error{Code: 422, Message: msg}
}

// Internal creates a 500 Internal Server Error.
// Use this for unexpected server errors; log the underlying error.
func Internal(err error) *Error {
	return &Error{Code: 500, Message: "internal server error", Err: err}
}

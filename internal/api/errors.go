package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind tags every failure surfaced by the client.
type ErrorKind string

const (
	// KindNetwork: the request never reached the API or no response came back.
	KindNetwork ErrorKind = "network"
	// KindRemote: the API answered with a non-2xx status or an unreadable body.
	KindRemote ErrorKind = "remote"
	// KindValidation: required input was missing before any request was made.
	KindValidation ErrorKind = "validation"
)

var (
	// ErrNetwork matches every KindNetwork error.
	ErrNetwork = errors.New("network error")

	// ErrRemote matches every KindRemote error.
	ErrRemote = errors.New("remote error")

	// ErrValidation matches client-side validation failures and remote
	// 400/422 responses.
	ErrValidation = errors.New("validation error")

	// ErrNotFound matches remote 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrMalformed indicates a 2xx response whose body failed decoding or
	// schema validation.
	ErrMalformed = errors.New("malformed response")
)

// Error is the tagged error returned by every client operation.
type Error struct {
	Kind    ErrorKind
	Op      string // e.g. "ballots.generate"
	Status  int    // HTTP status; 0 for network and validation errors
	Message string // server-provided or derived message, safe to display
	Err     error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRemote:
		if e.Status > 0 {
			return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

// Unwrap exposes the kind sentinel, status-derived sentinels and the cause
// so callers can use errors.Is on any of them.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 4)
	switch e.Kind {
	case KindNetwork:
		errs = append(errs, ErrNetwork)
	case KindRemote:
		errs = append(errs, ErrRemote)
	case KindValidation:
		errs = append(errs, ErrValidation)
	}
	switch e.Status {
	case http.StatusNotFound:
		errs = append(errs, ErrNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		errs = append(errs, ErrValidation)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Code returns a short machine-readable code for logging.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrMalformed):
		return "MALFORMED"
	case errors.Is(err, ErrValidation):
		return "VALIDATION"
	case errors.Is(err, ErrNetwork):
		return "NETWORK"
	case errors.Is(err, ErrRemote):
		return "REMOTE"
	default:
		return "UNKNOWN"
	}
}

func validationError(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

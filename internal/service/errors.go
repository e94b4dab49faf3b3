package service

import "errors"

var (
	// ErrInvalidInput marks malformed requests. The HTTP layer maps it to 400.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPrecondition marks well-formed requests that current data does not
	// allow, such as generating for an inactive section. Mapped to 422.
	ErrPrecondition = errors.New("precondition failed")
)

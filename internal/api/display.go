package api

import (
	"context"
	"errors"
)

// Display messages shown when the API gives nothing more specific.
const (
	msgTimeout     = "La solicitud excedió el tiempo de espera"
	msgUnreachable = "No se pudo conectar con el servidor"
)

// DisplayMessage converts an error into a user-facing string. Server
// messages from 4xx responses are shown verbatim; everything else uses a
// generic message or fallback. It never returns "".
func DisplayMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return fallback
	}
	switch {
	case errors.Is(err, ErrTimeout):
		return msgTimeout
	case errors.Is(err, context.Canceled):
		return fallback
	case apiErr.Kind == KindNetwork:
		return msgUnreachable
	case apiErr.Kind == KindValidation && apiErr.Message != "":
		return apiErr.Message
	case apiErr.Kind == KindRemote && apiErr.Status >= 400 && apiErr.Status < 500 && apiErr.Message != "":
		return apiErr.Message
	default:
		return fallback
	}
}

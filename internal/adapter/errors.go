package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found on server")
	ErrConflict            = errors.New("conflict on server")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServerUnreachable marks transport-level failures (connection
	// refused, timeout). Client services fall back to the local cache when
	// they see it.
	ErrServerUnreachable = errors.New("server unreachable")
)

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload fails
	// validation before reaching storage.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials is returned on login when the presented auth hash
	// does not match the stored verifier. Deliberately indistinguishable
	// from an unknown login.
	ErrWrongCredentials = errors.New("wrong login or master secret")

	// ErrTokenIsExpired is returned when a presented JWT has expired.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrMasterSecretNotSet is returned by client crypto operations invoked
	// before a successful login primed the service.
	ErrMasterSecretNotSet = errors.New("master secret is not set")

	// ErrRegisterOnServer wraps server-side registration failures on the
	// client.
	ErrRegisterOnServer = errors.New("registration failed on server")

	// ErrLoginOnServer wraps server-side login failures on the client.
	ErrLoginOnServer = errors.New("login failed on server")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

// Package app contains shared application-layer constants used across the
// ciphervault server handlers and the client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or log entries. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails validation (missing fields, malformed envelope, unknown type).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgWrongCredentials is returned when the supplied login/auth-hash
	// combination does not verify. Deliberately covers unknown logins too.
	MsgWrongCredentials = "wrong login or master secret"

	// MsgLoginAlreadyExists is returned when registration hits a taken login.
	MsgLoginAlreadyExists = "login already exists"

	// MsgUnknownLogin is returned by the pre-auth salt endpoint for logins
	// without an account.
	MsgUnknownLogin = "unknown login"

	// MsgItemNotFound is returned when the requested vault item does not
	// exist or belongs to a different user.
	MsgItemNotFound = "item not found"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"
)

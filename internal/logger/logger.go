// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

// Package logger wraps zerolog.Logger with the constructors and
// context-aware helpers used across ciphervault.
//
// Logger embeds zerolog.Logger, so the full zerolog API is available on
// *Logger. Request-scoped loggers travel through context and are recovered
// with FromContext or FromRequest.
//
// One hard rule applies everywhere: master secrets, derived keys, and
// decrypted plaintext are never logged at any level. Log envelope ids and
// sizes, not contents.
package logger

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production *Logger for the given role label
// (e.g. "vault-server", "vault-client"). Entries are JSON on stdout with a
// "role" field and a timestamp.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// NewFileLogger constructs a *Logger that appends JSON entries to path.
// The CLI client uses it so diagnostics never mix with command output on
// stdout. Falls back to stdout if the file cannot be opened.
func NewFileLogger(role, path string) *Logger {
	out, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return NewLogger(role)
	}

	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext stores the logger in ctx so downstream code can recover it
// with [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx by [Logger.WithContext] or
// zerolog's own helpers. If none was attached, zerolog's global logger is
// returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest returns the request-scoped logger attached to r's context by
// the logging middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

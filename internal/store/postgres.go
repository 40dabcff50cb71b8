// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

// Package store implements the persistence collaborators of ciphervault:
// the server-side PostgreSQL repositories and the client-side SQLite cache.
// Both treat envelope blobs as opaque text; no code in this package can or
// does decrypt anything.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/snesterov/ciphervault/internal/config"
	"github.com/snesterov/ciphervault/internal/logger"
)

// DB wraps the shared *sql.DB handle used by all server-side repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a connection pool to PostgreSQL through the pgx
// stdlib driver and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Msg("error opening database connection")
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error pinging database")
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info().Msg("connected to database")

	return &DB{DB: conn, logger: log}, nil
}

// NewDBFromSQL wraps an existing *sql.DB. Used by tests with sqlmock.
func NewDBFromSQL(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, logger: log}
}

// pgErrorCode extracts the PostgreSQL error code from a driver error, or
// returns "" for non-postgres errors.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

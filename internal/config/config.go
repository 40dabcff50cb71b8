// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

package config

import "time"

// ServerConfig is the top-level configuration for the vault server. It is
// populated by merging environment variables, command-line flags, and an
// optional JSON file (in that order of precedence, later sources filling
// gaps left by earlier ones).
type ServerConfig struct {
	// App holds security and token settings.
	App AppConfig `envPrefix:"APP_"`

	// Storage holds persistence settings.
	Storage StorageConfig `envPrefix:"STORAGE_"`

	// Server holds the inbound HTTP transport settings.
	Server HTTPServerConfig `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// populated via the CONFIG env variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// AppConfig holds application-level security settings.
type AppConfig struct {
	// HashKey is the server-side HMAC key applied to client auth hashes
	// before they are stored. Must be kept confidential.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// TokenSignKey signs and verifies JWT tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the iss claim on every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// HTTPServerConfig holds network settings for the HTTP listener.
type HTTPServerConfig struct {
	// Address is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`
}

// ClientConfig is the top-level configuration for the CLI client.
type ClientConfig struct {
	// Adapter holds settings for talking to the vault server.
	Adapter AdapterConfig `envPrefix:"ADAPTER_"`

	// Storage holds the local offline-cache settings.
	Storage ClientStorageConfig `envPrefix:"STORAGE_"`

	// LogPath is where client diagnostics are appended, keeping stdout
	// clean for command output.
	// Env: CLIENT_LOG_PATH
	LogPath string `env:"CLIENT_LOG_PATH"`

	// JSONFilePath is an optional JSON configuration file path.
	JSONFilePath string `env:"CONFIG"`
}

// AdapterConfig holds HTTP client settings for the server adapter.
type AdapterConfig struct {
	// BaseURL of the vault server, e.g. "http://localhost:8080".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorageConfig holds settings for the client's local SQLite cache.
type ClientStorageConfig struct {
	// Path of the SQLite database file.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"LOCAL_PATH"`
}

// validate checks the merged server configuration before startup.
func (cfg *ServerConfig) validate() error {
	if cfg.Server.Address == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.App.HashKey == "" || cfg.App.TokenSignKey == "" ||
		cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

// validate checks the merged client configuration, filling safe defaults
// for optional values.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "ciphervault.db"
	}
	if cfg.LogPath == "" {
		cfg.LogPath = "ciphervault.log"
	}
	return nil
}

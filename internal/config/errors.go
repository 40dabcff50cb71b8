package config

import "errors"

// Validation errors returned when a merged configuration is incomplete.
var (
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates missing or unusable storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing security settings (hash key,
	// token sign key, issuer, or duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates missing server-adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)

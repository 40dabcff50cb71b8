// Package service contains the server-side business layer and the
// client-side orchestration layer. Server services validate requests and
// delegate to repositories; client services run the cipher over item
// fields before anything leaves the process.
package service

import (
	"github.com/snesterov/ciphervault/internal/config"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/store"
)

// Services aggregates the server-side services for handler wiring.
type Services struct {
	Auth  AuthService
	Vault VaultService
}

// NewServices wires the server services on top of the given repositories.
func NewServices(users store.UserRepository, vault store.VaultRepository, cfg config.AppConfig, log *logger.Logger) *Services {
	return &Services{
		Auth:  NewAuthService(users, cfg, log),
		Vault: NewVaultService(vault, log),
	}
}

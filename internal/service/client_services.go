package service

import (
	"github.com/snesterov/ciphervault/internal/adapter"
	"github.com/snesterov/ciphervault/internal/crypto"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/store"
)

// ClientServices bundles the client-side services for the CLI.
type ClientServices struct {
	Crypto ClientCryptoService
	Auth   ClientAuthService
	Vault  ClientVaultService
}

// NewClientServices wires the client services around the production cipher.
func NewClientServices(serverAdapter adapter.ServerAdapter, local store.LocalVaultStorage, log *logger.Logger) *ClientServices {
	cryptoSvc := NewClientCryptoService(crypto.NewEnvelopeCipher())

	return &ClientServices{
		Crypto: cryptoSvc,
		Auth:   NewClientAuthService(serverAdapter, cryptoSvc),
		Vault:  NewClientVaultService(serverAdapter, local, cryptoSvc, log),
	}
}

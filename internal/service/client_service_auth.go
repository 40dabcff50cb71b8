package service

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/snesterov/ciphervault/internal/adapter"
	"github.com/snesterov/ciphervault/internal/crypto"
	"github.com/snesterov/ciphervault/models"
)

type clientAuthService struct {
	adapter       adapter.ServerAdapter
	cryptoService ClientCryptoService
	kdfIterations int
}

// NewClientAuthService builds the client-side auth flow on top of the
// server adapter.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, cryptoService ClientCryptoService) ClientAuthService {
	return newClientAuthService(serverAdapter, cryptoService, crypto.DefaultKDFIterations)
}

// newClientAuthService lets tests drop the iteration count.
func newClientAuthService(serverAdapter adapter.ServerAdapter, cryptoService ClientCryptoService, iterations int) ClientAuthService {
	return &clientAuthService{
		adapter:       serverAdapter,
		cryptoService: cryptoService,
		kdfIterations: iterations,
	}
}

// Register implements [ClientAuthService]. The generated salt is the
// account's public KDF parameter; only the derived auth hash travels to the
// server, never the master secret or the key.
func (a *clientAuthService) Register(ctx context.Context, login, masterSecret string) error {
	if login == "" || masterSecret == "" {
		return fmt.Errorf("%w: empty login or master secret", ErrInvalidDataProvided)
	}

	salt, err := crypto.NewSalt()
	if err != nil {
		return fmt.Errorf("generate kdf salt: %w", err)
	}

	key := crypto.DeriveKey(masterSecret, salt, a.kdfIterations)

	req := models.RegisterRequest{
		Login:    login,
		AuthHash: crypto.AuthHash(key),
		KDFSalt:  hex.EncodeToString(salt),
	}
	if err = a.adapter.Register(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return nil
}

// Login implements [ClientAuthService].
func (a *clientAuthService) Login(ctx context.Context, login, masterSecret string) error {
	if login == "" || masterSecret == "" {
		return fmt.Errorf("%w: empty login or master secret", ErrInvalidDataProvided)
	}

	saltHex, err := a.adapter.Salt(ctx, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) != crypto.SaltSize {
		return fmt.Errorf("%w: malformed kdf salt from server", ErrLoginOnServer)
	}

	key := crypto.DeriveKey(masterSecret, salt, a.kdfIterations)

	req := models.LoginRequest{Login: login, AuthHash: crypto.AuthHash(key)}
	if _, err = a.adapter.Login(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	// Only now, with the server convinced, does the secret become usable
	// for vault operations.
	a.cryptoService.SetMasterSecret(masterSecret)

	return nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
	a.cryptoService.Clear()
}

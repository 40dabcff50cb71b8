package service

import (
	"fmt"
	"sync"

	"github.com/snesterov/ciphervault/internal/crypto"
	"github.com/snesterov/ciphervault/models"
)

type clientCryptoService struct {
	cipher crypto.EnvelopeCipher

	mu           sync.RWMutex
	masterSecret string
}

// NewClientCryptoService wraps cipher into a [ClientCryptoService]. The
// service starts without a master secret; SetMasterSecret primes it after
// login.
func NewClientCryptoService(cipher crypto.EnvelopeCipher) ClientCryptoService {
	return &clientCryptoService{cipher: cipher}
}

func (c *clientCryptoService) SetMasterSecret(masterSecret string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.masterSecret = masterSecret
}

func (c *clientCryptoService) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.masterSecret = ""
}

func (c *clientCryptoService) secret() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.masterSecret == "" {
		return "", ErrMasterSecretNotSet
	}
	return c.masterSecret, nil
}

// EncryptItem implements [ClientCryptoService]. Secret and notes each get
// their own envelope with a fresh salt and nonce; encrypting the same item
// twice never produces the same blobs.
func (c *clientCryptoService) EncryptItem(plain models.PlainItem) (models.VaultItem, error) {
	masterSecret, err := c.secret()
	if err != nil {
		return models.VaultItem{}, err
	}

	secretBlob, err := c.cipher.Encrypt(plain.Secret, masterSecret)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("encrypt secret: %w", err)
	}

	item := models.VaultItem{
		ClientSideID: plain.ClientSideID,
		Name:         plain.Name,
		Type:         plain.Type,
		Secret:       models.CipheredSecret(secretBlob),
		Version:      plain.Version,
	}

	if plain.Notes != nil {
		notesBlob, err := c.cipher.Encrypt(*plain.Notes, masterSecret)
		if err != nil {
			return models.VaultItem{}, fmt.Errorf("encrypt notes: %w", err)
		}
		n := models.CipheredNotes(notesBlob)
		item.Notes = &n
	}

	return item, nil
}

// DecryptItem implements [ClientCryptoService].
func (c *clientCryptoService) DecryptItem(item models.VaultItem) (models.PlainItem, error) {
	masterSecret, err := c.secret()
	if err != nil {
		return models.PlainItem{}, err
	}

	secret, err := c.cipher.Decrypt(string(item.Secret), masterSecret)
	if err != nil {
		return models.PlainItem{}, fmt.Errorf("decrypt secret: %w", err)
	}

	plain := models.PlainItem{
		ClientSideID: item.ClientSideID,
		Name:         item.Name,
		Type:         item.Type,
		Secret:       secret,
		Version:      item.Version,
	}

	if item.Notes != nil {
		notes, err := c.cipher.Decrypt(string(*item.Notes), masterSecret)
		if err != nil {
			return models.PlainItem{}, fmt.Errorf("decrypt notes: %w", err)
		}
		plain.Notes = &notes
	}

	return plain, nil
}

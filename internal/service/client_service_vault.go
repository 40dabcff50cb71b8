package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/snesterov/ciphervault/internal/adapter"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/store"
	"github.com/snesterov/ciphervault/internal/utils"
	"github.com/snesterov/ciphervault/models"
)

type clientVaultService struct {
	adapter       adapter.ServerAdapter
	local         store.LocalVaultStorage
	cryptoService ClientCryptoService
	logger        *logger.Logger
}

// NewClientVaultService glues the crypto service, the local cache, and the
// server adapter into a [ClientVaultService].
func NewClientVaultService(serverAdapter adapter.ServerAdapter, local store.LocalVaultStorage, cryptoService ClientCryptoService, log *logger.Logger) ClientVaultService {
	return &clientVaultService{
		adapter:       serverAdapter,
		local:         local,
		cryptoService: cryptoService,
		logger:        log,
	}
}

// AddItem implements [ClientVaultService]. Writes are server-first: the
// cache only ever mirrors records the server has acknowledged.
func (s *clientVaultService) AddItem(ctx context.Context, plain models.PlainItem) (models.PlainItem, error) {
	plain.ClientSideID = utils.NewClientSideID()

	item, err := s.cryptoService.EncryptItem(plain)
	if err != nil {
		return models.PlainItem{}, err
	}

	saved, err := s.adapter.SaveItem(ctx, item)
	if err != nil {
		return models.PlainItem{}, fmt.Errorf("save item: %w", err)
	}

	s.cache(ctx, saved)

	plain.Version = saved.Version
	return plain, nil
}

// GetItem implements [ClientVaultService]. When the server cannot be
// reached the cached record is decrypted instead.
func (s *clientVaultService) GetItem(ctx context.Context, clientSideID string) (models.PlainItem, error) {
	if clientSideID == "" {
		return models.PlainItem{}, fmt.Errorf("%w: empty item id", ErrInvalidDataProvided)
	}

	item, err := s.adapter.GetItem(ctx, clientSideID)
	switch {
	case err == nil:
		s.cache(ctx, item)
	case errors.Is(err, adapter.ErrServerUnreachable):
		s.logger.Warn().Str("client_side_id", clientSideID).Msg("server unreachable, reading from local cache")
		item, err = s.local.Get(ctx, clientSideID)
		if err != nil {
			return models.PlainItem{}, fmt.Errorf("get cached item: %w", err)
		}
	default:
		return models.PlainItem{}, fmt.Errorf("get item: %w", err)
	}

	return s.cryptoService.DecryptItem(item)
}

// ListItems implements [ClientVaultService]. Offline listings come from the
// cache, which ignores filters; the caller gets everything it has.
func (s *clientVaultService) ListItems(ctx context.Context, filters models.ListFilters) ([]models.VaultItem, error) {
	items, err := s.adapter.ListItems(ctx, filters)
	if err != nil {
		if !errors.Is(err, adapter.ErrServerUnreachable) {
			return nil, fmt.Errorf("list items: %w", err)
		}
		s.logger.Warn().Msg("server unreachable, listing local cache")
		items, err = s.local.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list cached items: %w", err)
		}
		return items, nil
	}

	for _, item := range items {
		s.cache(ctx, item)
	}
	return items, nil
}

// UpdateItem implements [ClientVaultService]. The whole item is re-encrypted
// into brand-new envelopes before upload.
func (s *clientVaultService) UpdateItem(ctx context.Context, plain models.PlainItem) (models.PlainItem, error) {
	if plain.ClientSideID == "" {
		return models.PlainItem{}, fmt.Errorf("%w: empty item id", ErrInvalidDataProvided)
	}

	item, err := s.cryptoService.EncryptItem(plain)
	if err != nil {
		return models.PlainItem{}, err
	}

	updated, err := s.adapter.UpdateItem(ctx, item)
	if err != nil {
		return models.PlainItem{}, fmt.Errorf("update item: %w", err)
	}

	s.cache(ctx, updated)

	plain.Version = updated.Version
	return plain, nil
}

// DeleteItem implements [ClientVaultService].
func (s *clientVaultService) DeleteItem(ctx context.Context, clientSideID string) error {
	if clientSideID == "" {
		return fmt.Errorf("%w: empty item id", ErrInvalidDataProvided)
	}

	if err := s.adapter.DeleteItem(ctx, clientSideID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	if err := s.local.Delete(ctx, clientSideID); err != nil {
		s.logger.Warn().Err(err).Str("client_side_id", clientSideID).Msg("failed to drop cached item")
	}

	return nil
}

// cache mirrors a server-acknowledged record into the local store. Cache
// failures are logged, not surfaced: the server copy is authoritative.
func (s *clientVaultService) cache(ctx context.Context, item models.VaultItem) {
	if err := s.local.Put(ctx, item); err != nil {
		s.logger.Warn().Err(err).Str("client_side_id", item.ClientSideID).Msg("failed to cache item")
	}
}

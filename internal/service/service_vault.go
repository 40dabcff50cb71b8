package service

import (
	"context"
	"fmt"

	"github.com/snesterov/ciphervault/internal/crypto"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/store"
	"github.com/snesterov/ciphervault/models"
)

type vaultService struct {
	repo   store.VaultRepository
	logger *logger.Logger
}

// NewVaultService constructs a [VaultService] backed by repo.
func NewVaultService(repo store.VaultRepository, log *logger.Logger) VaultService {
	return &vaultService{repo: repo, logger: log}
}

// SaveItem implements [VaultService].
func (s *vaultService) SaveItem(ctx context.Context, userID int64, item models.VaultItem) (models.VaultItem, error) {
	if err := validateItem(item); err != nil {
		return models.VaultItem{}, err
	}

	saved, err := s.repo.Save(ctx, userID, item)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("save vault item: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", userID).
		Str("client_side_id", saved.ClientSideID).
		Msg("vault item saved")
	return saved, nil
}

// GetItem implements [VaultService].
func (s *vaultService) GetItem(ctx context.Context, userID int64, clientSideID string) (models.VaultItem, error) {
	if clientSideID == "" {
		return models.VaultItem{}, fmt.Errorf("%w: empty item id", ErrInvalidDataProvided)
	}

	item, err := s.repo.Get(ctx, userID, clientSideID)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("get vault item: %w", err)
	}

	return item, nil
}

// ListItems implements [VaultService].
func (s *vaultService) ListItems(ctx context.Context, userID int64, filters models.ListFilters) ([]models.VaultItem, error) {
	if filters.Type != "" && !filters.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", ErrInvalidDataProvided, filters.Type)
	}

	items, err := s.repo.List(ctx, userID, filters)
	if err != nil {
		return nil, fmt.Errorf("list vault items: %w", err)
	}

	return items, nil
}

// UpdateItem implements [VaultService]. The repository swaps in the new
// envelopes atomically and bumps the version.
func (s *vaultService) UpdateItem(ctx context.Context, userID int64, item models.VaultItem) (models.VaultItem, error) {
	if err := validateItem(item); err != nil {
		return models.VaultItem{}, err
	}

	updated, err := s.repo.Update(ctx, userID, item)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("update vault item: %w", err)
	}

	return updated, nil
}

// DeleteItem implements [VaultService].
func (s *vaultService) DeleteItem(ctx context.Context, userID int64, clientSideID string) error {
	if clientSideID == "" {
		return fmt.Errorf("%w: empty item id", ErrInvalidDataProvided)
	}

	if err := s.repo.Delete(ctx, userID, clientSideID); err != nil {
		return fmt.Errorf("delete vault item: %w", err)
	}

	return nil
}

// validateItem checks the structural shape of an incoming item. The server
// cannot decrypt the blobs, but it can refuse ones that do not even parse
// as envelopes — that is data corruption waiting to happen.
func validateItem(item models.VaultItem) error {
	if item.ClientSideID == "" {
		return fmt.Errorf("%w: empty client side id", ErrInvalidDataProvided)
	}
	if item.Name == "" {
		return fmt.Errorf("%w: empty item name", ErrInvalidDataProvided)
	}
	if !item.Type.Valid() {
		return fmt.Errorf("%w: unknown item type %q", ErrInvalidDataProvided, item.Type)
	}

	if _, err := crypto.ParseEnvelope(string(item.Secret)); err != nil {
		return fmt.Errorf("%w: secret: %w", ErrInvalidDataProvided, err)
	}
	if item.Notes != nil {
		if _, err := crypto.ParseEnvelope(string(*item.Notes)); err != nil {
			return fmt.Errorf("%w: notes: %w", ErrInvalidDataProvided, err)
		}
	}

	return nil
}

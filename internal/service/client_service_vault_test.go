package service

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snesterov/ciphervault/internal/adapter"
	"github.com/snesterov/ciphervault/internal/crypto"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/store"
	"github.com/snesterov/ciphervault/models"
)

// ─────────────────────────────────────────────
// Mock: store.LocalVaultStorage
// ─────────────────────────────────────────────

type mockLocalStorage struct {
	items map[string]models.VaultItem
}

func newMockLocalStorage() *mockLocalStorage {
	return &mockLocalStorage{items: make(map[string]models.VaultItem)}
}

func (m *mockLocalStorage) Put(_ context.Context, item models.VaultItem) error {
	m.items[item.ClientSideID] = item
	return nil
}

func (m *mockLocalStorage) Get(_ context.Context, clientSideID string) (models.VaultItem, error) {
	item, ok := m.items[clientSideID]
	if !ok {
		return models.VaultItem{}, store.ErrItemNotFound
	}
	return item, nil
}

func (m *mockLocalStorage) List(_ context.Context) ([]models.VaultItem, error) {
	out := make([]models.VaultItem, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, nil
}

func (m *mockLocalStorage) Delete(_ context.Context, clientSideID string) error {
	delete(m.items, clientSideID)
	return nil
}

func (m *mockLocalStorage) Close() error { return nil }

func newTestVaultService(srv *mockServerAdapter, local *mockLocalStorage) (ClientVaultService, ClientCryptoService) {
	cryptoSvc := NewClientCryptoService(crypto.NewEnvelopeCipherWithRandom(rand.Reader, testIterations))
	cryptoSvc.SetMasterSecret("correct-horse-battery-staple")
	return NewClientVaultService(srv, local, cryptoSvc, logger.Nop()), cryptoSvc
}

// ─────────────────────────────────────────────
// AddItem
// ─────────────────────────────────────────────

func TestClientVaultService_AddItem_UploadsCiphertextOnly(t *testing.T) {
	var uploaded models.VaultItem
	srv := &mockServerAdapter{
		saveItemFn: func(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
			uploaded = item
			item.ID = 1
			item.Version = 1
			return item, nil
		},
	}
	local := newMockLocalStorage()
	vaultSvc, _ := newTestVaultService(srv, local)

	plain := models.PlainItem{Name: "github", Type: models.LoginPassword, Secret: "s3cr3t"}
	saved, err := vaultSvc.AddItem(context.Background(), plain)
	require.NoError(t, err)

	// A UUID was assigned on the client.
	_, err = uuid.Parse(saved.ClientSideID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)

	// The wire never carried plaintext.
	assert.NotContains(t, string(uploaded.Secret), "s3cr3t")

	// The acknowledged record is mirrored into the cache.
	cached, err := local.Get(context.Background(), saved.ClientSideID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cached.Version)
}

func TestClientVaultService_AddItem_ServerFailureLeavesNoCacheEntry(t *testing.T) {
	srv := &mockServerAdapter{
		saveItemFn: func(_ context.Context, _ models.VaultItem) (models.VaultItem, error) {
			return models.VaultItem{}, adapter.ErrServerUnreachable
		},
	}
	local := newMockLocalStorage()
	vaultSvc, _ := newTestVaultService(srv, local)

	_, err := vaultSvc.AddItem(context.Background(), models.PlainItem{
		Name: "github", Type: models.LoginPassword, Secret: "x",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrServerUnreachable)
	assert.Empty(t, local.items)
}

// ─────────────────────────────────────────────
// GetItem
// ─────────────────────────────────────────────

func TestClientVaultService_GetItem_RoundTrip(t *testing.T) {
	var stored models.VaultItem
	srv := &mockServerAdapter{
		saveItemFn: func(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
			item.Version = 1
			stored = item
			return item, nil
		},
		getItemFn: func(_ context.Context, clientSideID string) (models.VaultItem, error) {
			require.Equal(t, stored.ClientSideID, clientSideID)
			return stored, nil
		},
	}
	vaultSvc, _ := newTestVaultService(srv, newMockLocalStorage())

	notes := "port 2222"
	plain := models.PlainItem{Name: "ssh", Type: models.LoginPassword, Secret: "hunter2", Notes: &notes}
	saved, err := vaultSvc.AddItem(context.Background(), plain)
	require.NoError(t, err)

	got, err := vaultSvc.GetItem(context.Background(), saved.ClientSideID)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got.Secret)
	require.NotNil(t, got.Notes)
	assert.Equal(t, notes, *got.Notes)
}

func TestClientVaultService_GetItem_OfflineFallsBackToCache(t *testing.T) {
	online := true
	var stored models.VaultItem
	srv := &mockServerAdapter{
		saveItemFn: func(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
			item.Version = 1
			stored = item
			return item, nil
		},
		getItemFn: func(_ context.Context, _ string) (models.VaultItem, error) {
			if !online {
				return models.VaultItem{}, adapter.ErrServerUnreachable
			}
			return stored, nil
		},
	}
	local := newMockLocalStorage()
	vaultSvc, _ := newTestVaultService(srv, local)

	saved, err := vaultSvc.AddItem(context.Background(), models.PlainItem{
		Name: "github", Type: models.LoginPassword, Secret: "s3cr3t",
	})
	require.NoError(t, err)

	online = false

	got, err := vaultSvc.GetItem(context.Background(), saved.ClientSideID)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", got.Secret)
}

func TestClientVaultService_GetItem_OfflineAndUncached(t *testing.T) {
	srv := &mockServerAdapter{
		getItemFn: func(_ context.Context, _ string) (models.VaultItem, error) {
			return models.VaultItem{}, adapter.ErrServerUnreachable
		},
	}
	vaultSvc, _ := newTestVaultService(srv, newMockLocalStorage())

	_, err := vaultSvc.GetItem(context.Background(), "never-seen")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

// ─────────────────────────────────────────────
// ListItems / UpdateItem / DeleteItem
// ─────────────────────────────────────────────

func TestClientVaultService_ListItems_OfflineUsesCache(t *testing.T) {
	srv := &mockServerAdapter{
		listItemsFn: func(_ context.Context, _ models.ListFilters) ([]models.VaultItem, error) {
			return nil, adapter.ErrServerUnreachable
		},
	}
	local := newMockLocalStorage()
	require.NoError(t, local.Put(context.Background(), models.VaultItem{ClientSideID: "cid-1", Name: "github"}))

	vaultSvc, _ := newTestVaultService(srv, local)

	items, err := vaultSvc.ListItems(context.Background(), models.ListFilters{})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "github", items[0].Name)
}

func TestClientVaultService_ListItems_MirrorsIntoCache(t *testing.T) {
	srv := &mockServerAdapter{
		listItemsFn: func(_ context.Context, _ models.ListFilters) ([]models.VaultItem, error) {
			return []models.VaultItem{{ClientSideID: "cid-1", Name: "github", Version: 3}}, nil
		},
	}
	local := newMockLocalStorage()
	vaultSvc, _ := newTestVaultService(srv, local)

	_, err := vaultSvc.ListItems(context.Background(), models.ListFilters{})
	require.NoError(t, err)

	cached, err := local.Get(context.Background(), "cid-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), cached.Version)
}

func TestClientVaultService_UpdateItem_ReEncrypts(t *testing.T) {
	var first, second models.VaultItem
	srv := &mockServerAdapter{
		saveItemFn: func(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
			item.Version = 1
			first = item
			return item, nil
		},
		updateItemFn: func(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
			item.Version = 2
			second = item
			return item, nil
		},
	}
	vaultSvc, _ := newTestVaultService(srv, newMockLocalStorage())

	saved, err := vaultSvc.AddItem(context.Background(), models.PlainItem{
		Name: "github", Type: models.LoginPassword, Secret: "same secret",
	})
	require.NoError(t, err)

	saved.Secret = "same secret"
	updated, err := vaultSvc.UpdateItem(context.Background(), saved)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	// Same plaintext, brand-new envelope.
	assert.NotEqual(t, string(first.Secret), string(second.Secret))
}

func TestClientVaultService_UpdateItem_EmptyID(t *testing.T) {
	vaultSvc, _ := newTestVaultService(&mockServerAdapter{}, newMockLocalStorage())

	_, err := vaultSvc.UpdateItem(context.Background(), models.PlainItem{Name: "x", Secret: "y"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientVaultService_DeleteItem_DropsCacheEntry(t *testing.T) {
	srv := &mockServerAdapter{}
	local := newMockLocalStorage()
	require.NoError(t, local.Put(context.Background(), models.VaultItem{ClientSideID: "cid-1"}))

	vaultSvc, _ := newTestVaultService(srv, local)

	require.NoError(t, vaultSvc.DeleteItem(context.Background(), "cid-1"))
	assert.Empty(t, local.items)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/snesterov/ciphervault/internal/config"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/models"
)

// localSchema holds the client cache table. Like the server, the cache only
// ever sees envelope blobs.
const localSchema = `CREATE TABLE IF NOT EXISTS vault_items (
	client_side_id TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	type           TEXT NOT NULL,
	secret         TEXT NOT NULL,
	notes          TEXT,
	version        INTEGER NOT NULL DEFAULT 1,
	created_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// localSQLiteStorage is the SQLite-backed implementation of
// [LocalVaultStorage]. The cache belongs to exactly one user, so rows are
// keyed by client-side id alone.
type localSQLiteStorage struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLocalStorage opens (or creates) the client's SQLite cache at
// cfg.Path and ensures the schema exists. Pass ":memory:" for an ephemeral
// cache in tests.
func NewLocalStorage(ctx context.Context, cfg config.ClientStorageConfig, log *logger.Logger) (LocalVaultStorage, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open local cache: %w", err)
	}

	if _, err = conn.ExecContext(ctx, localSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create local cache schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("local cache opened")
	return &localSQLiteStorage{db: conn, logger: log}, nil
}

// Put inserts or replaces the cached copy of an item.
func (s *localSQLiteStorage) Put(ctx context.Context, item models.VaultItem) error {
	const query = `INSERT INTO vault_items (client_side_id, name, type, secret, notes, version)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(client_side_id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			secret = excluded.secret,
			notes = excluded.notes,
			version = excluded.version,
			updated_at = CURRENT_TIMESTAMP;`

	_, err := s.db.ExecContext(ctx, query,
		item.ClientSideID, item.Name, item.Type, item.Secret, item.Notes, item.Version)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Get returns the cached item or [ErrItemNotFound].
func (s *localSQLiteStorage) Get(ctx context.Context, clientSideID string) (models.VaultItem, error) {
	const query = `SELECT client_side_id, name, type, secret, notes, version
		FROM vault_items WHERE client_side_id = ?;`

	var item models.VaultItem
	row := s.db.QueryRowContext(ctx, query, clientSideID)

	err := row.Scan(&item.ClientSideID, &item.Name, &item.Type, &item.Secret, &item.Notes, &item.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultItem{}, ErrItemNotFound
	}
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// List returns all cached items ordered by creation time.
func (s *localSQLiteStorage) List(ctx context.Context) ([]models.VaultItem, error) {
	const query = `SELECT client_side_id, name, type, secret, notes, version
		FROM vault_items ORDER BY created_at, client_side_id;`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0, 16)
	for rows.Next() {
		var item models.VaultItem
		if err = rows.Scan(&item.ClientSideID, &item.Name, &item.Type, &item.Secret, &item.Notes, &item.Version); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

// Delete removes the cached item. Deleting a missing item is not an error:
// the cache may simply be behind the server.
func (s *localSQLiteStorage) Delete(ctx context.Context, clientSideID string) error {
	const query = `DELETE FROM vault_items WHERE client_side_id = ?;`

	if _, err := s.db.ExecContext(ctx, query, clientSideID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *localSQLiteStorage) Close() error {
	return s.db.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/models"
)

// vaultItemColumns is the canonical column order shared by every SELECT and
// every row scan in this repository.
var vaultItemColumns = []string{
	"id", "client_side_id", "user_id", "name", "type",
	"secret", "notes", "version", "created_at", "updated_at",
}

// psql builds queries with $1-style placeholders for PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. It stores envelope blobs in the "vault_items" table as
// opaque text columns.
type vaultRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by db.
func NewVaultRepository(db *DB, log *logger.Logger) VaultRepository {
	log.Debug().Msg("creating vault repository")
	return &vaultRepository{db: db, logger: log}
}

// Save implements [VaultRepository].
func (r *vaultRepository) Save(ctx context.Context, userID int64, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("vault_items").
		Columns("client_side_id", "user_id", "name", "type", "secret", "notes", "version").
		Values(item.ClientSideID, userID, item.Name, item.Type, item.Secret, item.Notes, 1).
		Suffix("RETURNING " + joinColumns(vaultItemColumns)).
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	saved, err := r.scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Str("client_side_id", item.ClientSideID).
			Msg("failed to save vault item")
		return models.VaultItem{}, err
	}

	return saved, nil
}

// Get implements [VaultRepository].
func (r *vaultRepository) Get(ctx context.Context, userID int64, clientSideID string) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(vaultItemColumns...).
		From("vault_items").
		Where(sq.Eq{"user_id": userID, "client_side_id": clientSideID}).
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	item, err := r.scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return models.VaultItem{}, err
		}
		log.Err(err).
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Msg("failed to get vault item")
		return models.VaultItem{}, err
	}

	return item, nil
}

// List implements [VaultRepository]. Filters are optional; the query builder
// adds predicates only for the ones set.
func (r *vaultRepository) List(ctx context.Context, userID int64, filters models.ListFilters) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(vaultItemColumns...).
		From("vault_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id")

	if filters.Type != "" {
		builder = builder.Where(sq.Eq{"type": filters.Type})
	}
	if filters.NamePrefix != "" {
		builder = builder.Where(sq.ILike{"name": filters.NamePrefix + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to list vault items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0, 16)
	for rows.Next() {
		item, scanErr := scanItemFromRows(rows)
		if scanErr != nil {
			log.Err(scanErr).Int64("user_id", userID).Msg("failed to scan vault item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

// Update implements [VaultRepository]. The new envelopes replace the old
// ones wholesale and the version is incremented in the same statement.
func (r *vaultRepository) Update(ctx context.Context, userID int64, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("vault_items").
		Set("name", item.Name).
		Set("secret", item.Secret).
		Set("notes", item.Notes).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID, "client_side_id": item.ClientSideID}).
		Suffix("RETURNING " + joinColumns(vaultItemColumns)).
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	updated, err := r.scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return models.VaultItem{}, err
		}
		log.Err(err).
			Int64("user_id", userID).
			Str("client_side_id", item.ClientSideID).
			Msg("failed to update vault item")
		return models.VaultItem{}, err
	}

	return updated, nil
}

// Delete implements [VaultRepository].
func (r *vaultRepository) Delete(ctx context.Context, userID int64, clientSideID string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("vault_items").
		Where(sq.Eq{"user_id": userID, "client_side_id": clientSideID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Msg("failed to delete vault item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// scanItem scans a single-row result, mapping sql.ErrNoRows to
// ErrItemNotFound.
func (r *vaultRepository) scanItem(row *sql.Row) (models.VaultItem, error) {
	var item models.VaultItem
	err := row.Scan(
		&item.ID,
		&item.ClientSideID,
		&item.UserID,
		&item.Name,
		&item.Type,
		&item.Secret,
		&item.Notes,
		&item.Version,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultItem{}, ErrItemNotFound
	}
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return item, nil
}

func scanItemFromRows(rows *sql.Rows) (models.VaultItem, error) {
	var item models.VaultItem
	err := rows.Scan(
		&item.ID,
		&item.ClientSideID,
		&item.UserID,
		&item.Name,
		&item.Type,
		&item.Secret,
		&item.Notes,
		&item.Version,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/models"
)

const (
	createUserSQL = `INSERT INTO users (login, auth_verifier, kdf_salt)
		VALUES ($1, $2, $3)
		RETURNING id, login, auth_verifier, kdf_salt, created_at;`

	findUserByLoginSQL = `SELECT id, login, auth_verifier, kdf_salt, created_at
		FROM users
		WHERE login = $1;`
)

// userRepository is the PostgreSQL-backed implementation of
// [UserRepository]. It stores only the login, the HMAC'd auth verifier, and
// the public per-account KDF salt; no secret material ever reaches this
// table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating user repository")
	return &userRepository{db: db, logger: log}
}

// CreateUser persists a new account. A unique-violation on the login column
// maps to [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUserSQL, user.Login, user.AuthVerifier, user.KDFSalt)

	err := row.Scan(&user.ID, &user.Login, &user.AuthVerifier, &user.KDFSalt, &user.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}
		log.Err(err).Str("login", user.Login).Msg("failed to create user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByLogin returns the account for login or [ErrUserNotFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByLoginSQL, login)

	err := row.Scan(&user.ID, &user.Login, &user.AuthVerifier, &user.KDFSalt, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("login", login).Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

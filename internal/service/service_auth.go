// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/snesterov/ciphervault/internal/config"
	"github.com/snesterov/ciphervault/internal/crypto"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/store"
	"github.com/snesterov/ciphervault/internal/utils"
	"github.com/snesterov/ciphervault/models"
)

type authService struct {
	users  store.UserRepository
	cfg    config.AppConfig
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] backed by the user repository.
func NewAuthService(users store.UserRepository, cfg config.AppConfig, log *logger.Logger) AuthService {
	return &authService{users: users, cfg: cfg, logger: log}
}

// Register implements [AuthService]. The stored verifier is an HMAC of the
// client's auth hash under the server key: a stolen database row cannot be
// replayed as a login without that key.
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := validateRegisterRequest(req); err != nil {
		return models.User{}, err
	}

	user := models.User{
		Login:        req.Login,
		AuthVerifier: utils.HashString(req.AuthHash, s.cfg.HashKey),
		KDFSalt:      req.KDFSalt,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("register user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("login", created.Login).Msg("user registered")
	return created, nil
}

// Salt implements [AuthService].
func (s *authService) Salt(ctx context.Context, login string) (string, error) {
	if login == "" {
		return "", fmt.Errorf("%w: empty login", ErrInvalidDataProvided)
	}

	user, err := s.users.FindUserByLogin(ctx, login)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}

	return user.KDFSalt, nil
}

// Login implements [AuthService]. The comparison runs in constant time, and
// an unknown login produces the same error as a bad hash.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Login == "" || req.AuthHash == "" {
		return models.Token{}, fmt.Errorf("%w: empty login or auth hash", ErrInvalidDataProvided)
	}

	user, err := s.users.FindUserByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Token{}, ErrWrongCredentials
		}
		return models.Token{}, fmt.Errorf("find user: %w", err)
	}

	presented := utils.HashString(req.AuthHash, s.cfg.HashKey)
	if !utils.EqualHashes(presented, user.AuthVerifier) {
		log.Warn().Str("login", req.Login).Msg("login rejected")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, user.ID, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// ParseToken implements [AuthService].
func (s *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ParseJWTToken(tokenString, s.cfg.TokenIssuer, s.cfg.TokenSignKey)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, err
	}
	return token, nil
}

func validateRegisterRequest(req models.RegisterRequest) error {
	if req.Login == "" {
		return fmt.Errorf("%w: empty login", ErrInvalidDataProvided)
	}
	if req.AuthHash == "" {
		return fmt.Errorf("%w: empty auth hash", ErrInvalidDataProvided)
	}

	salt, err := hex.DecodeString(req.KDFSalt)
	if err != nil || len(salt) != crypto.SaltSize {
		return fmt.Errorf("%w: kdf salt must be %d hex-encoded bytes", ErrInvalidDataProvided, crypto.SaltSize)
	}

	return nil
}

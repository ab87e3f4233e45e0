// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mvoronin/estate-keeper/internal/config"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/internal/utils"
	"github.com/mvoronin/estate-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles manager registration, credential verification and JWT token
// lifecycle, using a ManagerRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// managerRepository is the data-access layer used to create and look up
	// manager accounts.
	managerRepository store.ManagerRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// ManagerRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(managerRepository store.ManagerRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		managerRepository: managerRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// RegisterManager creates a new manager account.
//
// It validates that email, name and password are non-empty, hashes the
// password with bcrypt and delegates persistence to the ManagerRepository.
//
// Returns the persisted manager (with a server-assigned ManagerID) or:
//   - ErrInvalidDataProvided if Email, Name or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterManager(ctx context.Context, manager models.Manager, password string) (models.Manager, error) {
	log := logger.FromContext(ctx)

	if manager.Email == "" || manager.Name == "" || password == "" {
		log.Error().Str("email", manager.Email).Msg("invalid manager data provided")
		return models.Manager{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("error hashing manager password")
		return models.Manager{}, fmt.Errorf("error hashing manager password: %w", err)
	}
	manager.PasswordHash = passwordHash

	registeredManager, err := a.managerRepository.CreateManager(ctx, manager)
	if err != nil {
		log.Err(err).Str("email", manager.Email).Msg("manager creation ended with error")
		return models.Manager{}, fmt.Errorf("manager creation ended with error: %w", err)
	}

	return registeredManager, nil
}

// Login authenticates an existing manager.
//
// It looks up the account by email and compares the supplied password
// against the stored bcrypt hash.
//
// Returns the authenticated manager record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the repository lookup fails (see
//     store.ErrNoManagerWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, email, password string) (models.Manager, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.Manager{}, ErrInvalidDataProvided
	}

	foundManager, err := a.managerRepository.FindManagerByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("manager search ended with error")
		return models.Manager{}, fmt.Errorf("manager search ended with error: %w", err)
	}

	if err := utils.CheckPassword(foundManager.PasswordHash, password); err != nil {
		log.Error().Str("email", email).Msg("wrong password")
		return models.Manager{}, ErrWrongPassword
	}

	return foundManager, nil
}

// CreateToken issues a signed JWT for the given manager with the configured
// issuer and lifetime.
//
// Returns ErrTokenCreationFailed if signing fails.
func (a *authService) CreateToken(ctx context.Context, manager models.Manager) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, manager.ManagerID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("manager_id", manager.ManagerID).Msg("error during jwt token creation")
		return models.Token{}, ErrTokenCreationFailed
	}

	return token, nil
}

// ParseToken validates the signature, expiry and issuer of tokenString and
// returns the parsed token.
//
// Returns ErrTokenIsExpiredOrInvalid for any token that fails validation.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("token validation ended with error")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

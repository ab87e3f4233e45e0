// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/models"
)

// managerRepository is the PostgreSQL-backed implementation of
// [ManagerRepository]. It handles manager account creation and lookup
// against the "property_managers" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type managerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewManagerRepository constructs a [ManagerRepository] backed by the
// provided database connection and logger.
func NewManagerRepository(db *DB, logger *logger.Logger) ManagerRepository {
	logger.Debug().Msg("creating manager repository")
	return &managerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateManager persists a new manager account and returns the fully
// populated [models.Manager] with server-assigned fields (ManagerID,
// CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (r *managerRepository) CreateManager(ctx context.Context, manager models.Manager) (models.Manager, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createManager, manager.Email, manager.Name, manager.Phone, manager.PasswordHash)

	// scan saved manager from db
	if err := row.Scan(&manager.ManagerID, &manager.Email, &manager.Name, &manager.Phone, &manager.PasswordHash, &manager.CreatedAt); err != nil {
		log.Err(err).Str("func", "managerRepository.CreateManager").Msg("failed to insert manager")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Manager{}, ErrEmailAlreadyExists
		default:
			return models.Manager{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return manager, nil
}

// FindManagerByEmail retrieves the manager account registered under the
// given email. Returns [ErrNoManagerWasFound] when no account matches.
func (r *managerRepository) FindManagerByEmail(ctx context.Context, email string) (models.Manager, error) {
	log := logger.FromContext(ctx)

	var found models.Manager
	row := r.db.QueryRowContext(ctx, findManagerByEmail, email)

	if err := row.Scan(&found.ManagerID, &found.Email, &found.Name, &found.Phone, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Manager{}, ErrNoManagerWasFound
		}

		log.Err(err).Str("func", "managerRepository.FindManagerByEmail").Msg("failed to find manager by email")
		return models.Manager{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// GetManager retrieves a manager account by its identifier. Returns
// [ErrNoManagerWasFound] when the account does not exist.
func (r *managerRepository) GetManager(ctx context.Context, managerID string) (models.Manager, error) {
	log := logger.FromContext(ctx)

	var found models.Manager
	row := r.db.QueryRowContext(ctx, getManager, managerID)

	if err := row.Scan(&found.ManagerID, &found.Email, &found.Name, &found.Phone, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Manager{}, ErrNoManagerWasFound
		}

		log.Err(err).Str("func", "managerRepository.GetManager").Str("manager_id", managerID).Msg("failed to get manager")
		return models.Manager{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

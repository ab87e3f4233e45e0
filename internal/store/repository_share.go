package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/models"
)

// shareRepository is the PostgreSQL-backed implementation of
// [ShareRepository]. It manages cross-manager client access grants in the
// "client_shares" table.
type shareRepository struct {
	*DB
	logger *logger.Logger
}

// NewShareRepository constructs a [ShareRepository] backed by the provided
// database connection and logger.
func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateShare grants a manager access to a client. Returns
// [ErrAlreadyShared] when the client is already shared with that manager.
func (s *shareRepository) CreateShare(ctx context.Context, share models.ClientShare) (models.ClientShare, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, createShare,
		share.ClientID, share.SharedWithManagerID, share.SharedByManagerID)

	err := row.Scan(
		&share.ShareID,
		&share.ClientID,
		&share.SharedWithManagerID,
		&share.SharedByManagerID,
		&share.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.CreateShare").
			Str("client_id", share.ClientID).
			Str("shared_with", share.SharedWithManagerID).
			Msg("failed to insert client share")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.ClientShare{}, ErrAlreadyShared
		default:
			return models.ClientShare{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return share, nil
}

// DeleteShare revokes a manager's access to a client. Returns
// [ErrShareNotFound] when no such grant exists.
func (s *shareRepository) DeleteShare(ctx context.Context, clientID, sharedWithManagerID string) error {
	log := logger.FromContext(ctx)

	result, execErr := s.DB.ExecContext(ctx, deleteShare, clientID, sharedWithManagerID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "shareRepository.DeleteShare").
			Str("client_id", clientID).
			Str("shared_with", sharedWithManagerID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrShareNotFound
	}

	return nil
}

// ListSharesForClient returns every grant on the given client, oldest
// first.
func (s *shareRepository) ListSharesForClient(ctx context.Context, clientID string) ([]models.ClientShare, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := s.DB.QueryContext(ctx, listSharesForClient, clientID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "shareRepository.ListSharesForClient").
			Str("client_id", clientID).
			Msg("failed to execute query for listing client shares")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	shares := make([]models.ClientShare, 0, 10)

	for rows.Next() {
		var share models.ClientShare

		scanErr := rows.Scan(
			&share.ShareID,
			&share.ClientID,
			&share.SharedWithManagerID,
			&share.SharedByManagerID,
			&share.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "shareRepository.ListSharesForClient").Msg("failed to scan client share row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		shares = append(shares, share)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "shareRepository.ListSharesForClient").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return shares, nil
}

// ListClientIDsSharedWith returns the identifiers of every client shared
// with the given manager.
func (s *shareRepository) ListClientIDsSharedWith(ctx context.Context, managerID string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := s.DB.QueryContext(ctx, listClientIDsSharedWith, managerID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "shareRepository.ListClientIDsSharedWith").
			Str("manager_id", managerID).
			Msg("failed to execute query for listing shared client ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	clientIDs := make([]string, 0, 10)

	for rows.Next() {
		var clientID string

		if scanErr := rows.Scan(&clientID); scanErr != nil {
			log.Err(scanErr).Str("func", "shareRepository.ListClientIDsSharedWith").Msg("failed to scan client id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		clientIDs = append(clientIDs, clientID)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "shareRepository.ListClientIDsSharedWith").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return clientIDs, nil
}

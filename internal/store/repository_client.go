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

// clientRepository is the PostgreSQL-backed implementation of
// [ClientRepository]. It executes all client CRUD operations against the
// "clients" table using the embedded [*DB] connection.
type clientRepository struct {
	*DB
	logger *logger.Logger
}

// NewClientRepository constructs a [ClientRepository] backed by the
// provided database connection and logger.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		DB:     db,
		logger: logger,
	}
}

func scanClient(row rowScanner) (models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ClientID,
		&c.ManagerID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Status,
		&c.Slug,
		&c.LastAccessed,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// CreateClient persists a new client record and returns the fully populated
// [models.Client] with server-assigned fields (ClientID, CreatedAt,
// UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSlugAlreadyExists]. The slug
//     is the only unique client column, so the collision is unambiguous.
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (c *clientRepository) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createClient,
		client.ManagerID, client.Name, client.Email, client.Phone, client.Status, client.Slug)

	created, err := scanClient(row)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.CreateClient").Str("slug", client.Slug).Msg("failed to insert client")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Client{}, ErrSlugAlreadyExists
		default:
			return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// GetClient retrieves a client by its identifier. Returns
// [ErrClientNotFound] when no record matches.
func (c *clientRepository) GetClient(ctx context.Context, clientID string) (models.Client, error) {
	log := logger.FromContext(ctx)

	found, err := scanClient(c.DB.QueryRowContext(ctx, getClient, clientID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "clientRepository.GetClient").Str("client_id", clientID).Msg("failed to get client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// GetClientBySlug retrieves a client by its public portfolio slug. This is
// the unauthenticated lookup behind the portfolio page. Returns
// [ErrClientNotFound] when no record matches.
func (c *clientRepository) GetClientBySlug(ctx context.Context, slug string) (models.Client, error) {
	log := logger.FromContext(ctx)

	found, err := scanClient(c.DB.QueryRowContext(ctx, getClientBySlug, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "clientRepository.GetClientBySlug").Str("slug", slug).Msg("failed to get client by slug")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListClients returns every client the manager owns plus clients shared
// with them, newest first, each enriched with its assigned-property count.
func (c *clientRepository) ListClients(ctx context.Context, managerID string) ([]models.ClientWithDetails, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := c.DB.QueryContext(ctx, listClientsWithDetails, managerID)
	if queryErr != nil {
		log.Err(queryErr).Str("func", "clientRepository.ListClients").Str("manager_id", managerID).Msg("failed to execute query for listing clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	clients := make([]models.ClientWithDetails, 0, 50)

	for rows.Next() {
		var client models.ClientWithDetails

		scanErr := rows.Scan(
			&client.ClientID,
			&client.ManagerID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.Status,
			&client.Slug,
			&client.LastAccessed,
			&client.CreatedAt,
			&client.UpdatedAt,
			&client.PropertyCount,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "clientRepository.ListClients").Msg("failed to scan client row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		clients = append(clients, client)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "clientRepository.ListClients").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return clients, nil
}

// UpdateClient overwrites the mutable client fields (name, email, phone,
// status, slug). Returns [ErrClientNotFound] when the record does not
// exist, [ErrSlugAlreadyExists] when the new slug collides.
func (c *clientRepository) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, updateClient,
		client.Name, client.Email, client.Phone, client.Status, client.Slug, client.ClientID)

	updated, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "clientRepository.UpdateClient").Str("client_id", client.ClientID).Msg("failed to update client")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Client{}, ErrSlugAlreadyExists
		default:
			return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return updated, nil
}

// DeleteClient removes a client record. Assignment and share rows
// referencing it are removed by ON DELETE CASCADE. Returns
// [ErrClientNotFound] when the record does not exist.
func (c *clientRepository) DeleteClient(ctx context.Context, clientID string) error {
	log := logger.FromContext(ctx)

	result, execErr := c.DB.ExecContext(ctx, deleteClient, clientID)
	if execErr != nil {
		log.Err(execErr).Str("func", "clientRepository.DeleteClient").Str("client_id", clientID).Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// TouchLastAccessed bumps the client's last_accessed timestamp. Called on
// every public portfolio view; an unknown client is not an error here
// because the portfolio lookup has already resolved the slug.
func (c *clientRepository) TouchLastAccessed(ctx context.Context, clientID string) error {
	log := logger.FromContext(ctx)

	if _, err := c.DB.ExecContext(ctx, touchClientLastAccessed, clientID); err != nil {
		log.Err(err).Str("func", "clientRepository.TouchLastAccessed").Str("client_id", clientID).Msg("failed to bump last accessed timestamp")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

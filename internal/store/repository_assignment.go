// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/models"
)

// assignmentRepository is the PostgreSQL-backed implementation of
// [AssignmentRepository]. It manages the ordered client↔property relation
// in the "client_property_assignments" table.
//
// Ordering invariant: positions within one client's portfolio are assigned
// append-only (max+1) on single inserts and rewritten contiguously from
// zero by [assignmentRepository.PersistOrder]. Reads never assume
// contiguity, only relative order.
type assignmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewAssignmentRepository constructs an [AssignmentRepository] backed by
// the provided database connection and logger.
func NewAssignmentRepository(db *DB, logger *logger.Logger) AssignmentRepository {
	logger.Debug().Msg("creating assignment repository")
	return &assignmentRepository{
		DB:     db,
		logger: logger,
	}
}

// Assign creates a single assignment at the end of the client's portfolio
// with the given pricing visibility triple. The position is computed inside
// the INSERT statement from the current maximum, so no separate read is
// needed.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAlreadyAssigned].
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (a *assignmentRepository) Assign(ctx context.Context, clientID, propertyID string, pricing models.PricingVisibility) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	var assignment models.Assignment
	row := a.DB.QueryRowContext(ctx, assignProperty, clientID, propertyID,
		pricing.ShowMonthlyRent, pricing.ShowNightlyRate, pricing.ShowPurchasePrice)

	err := row.Scan(
		&assignment.ClientID,
		&assignment.PropertyID,
		&assignment.Position,
		&assignment.Pricing.ShowMonthlyRent,
		&assignment.Pricing.ShowNightlyRate,
		&assignment.Pricing.ShowPurchasePrice,
		&assignment.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "assignmentRepository.Assign").
			Str("client_id", clientID).
			Str("property_id", propertyID).
			Msg("failed to insert assignment")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Assignment{}, ErrAlreadyAssigned
		default:
			return models.Assignment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return assignment, nil
}

// Unassign removes a single assignment. Positions of the remaining rows are
// left untouched; relative order is preserved and the next append still
// lands at max+1. Returns [ErrAssignmentNotFound] when the pair does not
// exist.
func (a *assignmentRepository) Unassign(ctx context.Context, clientID, propertyID string) error {
	log := logger.FromContext(ctx)

	result, execErr := a.DB.ExecContext(ctx, unassignProperty, clientID, propertyID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "assignmentRepository.Unassign").
			Str("client_id", clientID).
			Str("property_id", propertyID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// UpdateVisibility overwrites the full pricing visibility triple of an
// assignment. All three flags are always written; partial updates are
// resolved by the caller before reaching the store. Returns
// [ErrAssignmentNotFound] when the pair does not exist.
func (a *assignmentRepository) UpdateVisibility(ctx context.Context, clientID, propertyID string, pricing models.PricingVisibility) error {
	log := logger.FromContext(ctx)

	result, execErr := a.DB.ExecContext(ctx, updateAssignmentVisibility,
		clientID, propertyID,
		pricing.ShowMonthlyRent, pricing.ShowNightlyRate, pricing.ShowPurchasePrice)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "assignmentRepository.UpdateVisibility").
			Str("client_id", clientID).
			Str("property_id", propertyID).
			Msg("failed to execute visibility update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// ListAssigned returns the client's portfolio in display order: position
// ascending, legacy NULL positions last, ties broken by assignment age.
// NULL visibility columns are coalesced to true in the query, so the
// returned triples are always concrete.
func (a *assignmentRepository) ListAssigned(ctx context.Context, clientID string) ([]models.AssignedProperty, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := a.DB.QueryContext(ctx, listAssignedProperties, clientID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "assignmentRepository.ListAssigned").
			Str("client_id", clientID).
			Msg("failed to execute query for listing assigned properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	assigned := make([]models.AssignedProperty, 0, 20)

	for rows.Next() {
		var item models.AssignedProperty

		scanErr := scanAssignedProperty(rows, &item)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "assignmentRepository.ListAssigned").
				Str("client_id", clientID).
				Msg("failed to scan assigned property row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		assigned = append(assigned, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "assignmentRepository.ListAssigned").
			Str("client_id", clientID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return assigned, nil
}

// scanAssignedProperty reads a joined property+assignment row: the full
// property column set followed by position and the visibility triple.
func scanAssignedProperty(row rowScanner, item *models.AssignedProperty) error {
	var imagesJSON []byte

	err := row.Scan(
		&item.Property.PropertyID,
		&item.Property.ListingURL,
		&item.Property.Address,
		&item.Property.Bedrooms,
		&item.Property.Bathrooms,
		&item.Property.Area,
		&imagesJSON,
		&item.Property.Description,
		&item.Property.ScrapedAt,
		&item.Property.CreatedAt,
		&item.Property.UpdatedAt,
		&item.Property.ShowMonthlyRent,
		&item.Property.CustomMonthlyRent,
		&item.Property.ShowNightlyRate,
		&item.Property.CustomNightlyRate,
		&item.Property.ShowPurchasePrice,
		&item.Property.CustomPurchasePrice,
		&item.Property.Display.ShowBedrooms,
		&item.Property.Display.ShowBathrooms,
		&item.Property.Display.ShowArea,
		&item.Property.Display.ShowAddress,
		&item.Property.Display.ShowImages,
		&item.Property.Display.LabelBedrooms,
		&item.Property.Display.LabelBathrooms,
		&item.Property.Display.LabelArea,
		&item.Property.Display.LabelMonthlyRent,
		&item.Property.Display.LabelNightlyRate,
		&item.Property.Display.LabelPurchasePrice,
		&item.Property.Display.CustomNotes,
		&item.Position,
		&item.Pricing.ShowMonthlyRent,
		&item.Pricing.ShowNightlyRate,
		&item.Pricing.ShowPurchasePrice,
	)
	if err != nil {
		return err
	}

	return json.Unmarshal(imagesJSON, &item.Property.Images)
}

// ListClientSlugsForProperty returns the slug of every client the property
// is assigned to. Used to find the cached portfolio pages a property-level
// change makes stale.
func (a *assignmentRepository) ListClientSlugsForProperty(ctx context.Context, propertyID string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := a.DB.QueryContext(ctx, listClientSlugsForProperty, propertyID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "assignmentRepository.ListClientSlugsForProperty").
			Str("property_id", propertyID).
			Msg("failed to execute slug lookup query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if scanErr := rows.Scan(&slug); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		slugs = append(slugs, slug)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return slugs, nil
}

// BulkAssign appends every given property to the client's portfolio inside
// a single transaction: one read for the next free position, then one
// multi-row INSERT. The shared pricing triple is applied to every new row.
// Properties already assigned are skipped via ON CONFLICT DO NOTHING and
// excluded from the returned count, so the operation is idempotent per
// member.
//
// Skipped members leave gaps in the freshly assigned position range; gaps
// are harmless because ordering is relative.
func (a *assignmentRepository) BulkAssign(ctx context.Context, clientID string, propertyIDs []string, pricing models.PricingVisibility) (models.BulkResult, error) {
	log := logger.FromContext(ctx)

	if len(propertyIDs) == 0 {
		log.Warn().Str("func", "assignmentRepository.BulkAssign").Str("client_id", clientID).Msg("no property ids provided")
		return models.BulkResult{}, nil
	}

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "assignmentRepository.BulkAssign").
			Str("client_id", clientID).
			Int("properties_count", len(propertyIDs)).
			Msg("failed to begin transaction")
		return models.BulkResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var basePosition int
	if err := tx.QueryRowContext(ctx, nextAssignmentPosition, clientID).Scan(&basePosition); err != nil {
		log.Err(err).
			Str("func", "assignmentRepository.BulkAssign").
			Str("client_id", clientID).
			Msg("failed to read next free position")
		return models.BulkResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildBulkAssignQuery(clientID, propertyIDs, basePosition, pricing)
	if err != nil {
		log.Err(err).
			Str("func", "assignmentRepository.BulkAssign").
			Str("client_id", clientID).
			Msg("failed to build bulk assign query")
		return models.BulkResult{}, err
	}

	result, execErr := tx.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "assignmentRepository.BulkAssign").
			Str("client_id", clientID).
			Int("properties_count", len(propertyIDs)).
			Msg("failed to execute bulk assign query")
		return models.BulkResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return models.BulkResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "assignmentRepository.BulkAssign").
			Str("client_id", clientID).
			Msg("failed to commit transaction")
		return models.BulkResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "assignmentRepository.BulkAssign").
		Str("client_id", clientID).
		Int("requested", len(propertyIDs)).
		Int64("inserted", inserted).
		Msg("bulk assign completed")

	return models.BulkResult{Count: int(inserted)}, nil
}

// BulkUnassign removes the given properties from the client's portfolio in
// one DELETE. Members that were never assigned are silently skipped; the
// returned count covers actually deleted rows only.
func (a *assignmentRepository) BulkUnassign(ctx context.Context, clientID string, propertyIDs []string) (models.BulkResult, error) {
	log := logger.FromContext(ctx)

	if len(propertyIDs) == 0 {
		log.Warn().Str("func", "assignmentRepository.BulkUnassign").Str("client_id", clientID).Msg("no property ids provided")
		return models.BulkResult{}, nil
	}

	result, execErr := a.DB.ExecContext(ctx, bulkUnassignProperties, clientID, propertyIDs)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "assignmentRepository.BulkUnassign").
			Str("client_id", clientID).
			Int("properties_count", len(propertyIDs)).
			Msg("failed to execute bulk unassign query")
		return models.BulkResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return models.BulkResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.BulkResult{Count: int(deleted)}, nil
}

// PersistOrder rewrites the portfolio order in one transaction: each
// property in orderedPropertyIDs gets its slice index as position. Rows not
// mentioned keep their old positions, which may duplicate new ones; the
// read-side tiebreaker keeps display order stable regardless.
func (a *assignmentRepository) PersistOrder(ctx context.Context, clientID string, orderedPropertyIDs []string) error {
	log := logger.FromContext(ctx)

	if len(orderedPropertyIDs) == 0 {
		log.Warn().Str("func", "assignmentRepository.PersistOrder").Str("client_id", clientID).Msg("no property ids provided")
		return nil
	}

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "assignmentRepository.PersistOrder").
			Str("client_id", clientID).
			Int("properties_count", len(orderedPropertyIDs)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, persistAssignmentPosition)
	if err != nil {
		log.Err(err).
			Str("func", "assignmentRepository.PersistOrder").
			Str("client_id", clientID).
			Msg("failed to prepare position update statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, propertyID := range orderedPropertyIDs {
		if _, execErr := stmt.ExecContext(ctx, clientID, propertyID, idx); execErr != nil {
			log.Err(execErr).
				Str("func", "assignmentRepository.PersistOrder").
				Str("client_id", clientID).
				Str("property_id", propertyID).
				Int("position", idx).
				Msg("failed to persist assignment position")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "assignmentRepository.PersistOrder").
			Str("client_id", clientID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

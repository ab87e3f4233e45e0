package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/models"
)

// propertyRepository is the PostgreSQL-backed implementation of
// [PropertyRepository]. It executes all listing CRUD operations directly
// against the "properties" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (property_id, address, etc.).
type propertyRepository struct {
	*DB
	logger *logger.Logger
}

// NewPropertyRepository constructs a [PropertyRepository] backed by the
// provided database connection and logger.
func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("creating property repository")
	return &propertyRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProperty reads a full property row (all columns in the canonical
// [propertyColumns] order). The images column is stored as JSONB and
// unmarshalled into the string slice here.
func scanProperty(row rowScanner) (models.Property, error) {
	var p models.Property
	var imagesJSON []byte

	err := row.Scan(
		&p.PropertyID,
		&p.ListingURL,
		&p.Address,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Area,
		&imagesJSON,
		&p.Description,
		&p.ScrapedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.ShowMonthlyRent,
		&p.CustomMonthlyRent,
		&p.ShowNightlyRate,
		&p.CustomNightlyRate,
		&p.ShowPurchasePrice,
		&p.CustomPurchasePrice,
		&p.Display.ShowBedrooms,
		&p.Display.ShowBathrooms,
		&p.Display.ShowArea,
		&p.Display.ShowAddress,
		&p.Display.ShowImages,
		&p.Display.LabelBedrooms,
		&p.Display.LabelBathrooms,
		&p.Display.LabelArea,
		&p.Display.LabelMonthlyRent,
		&p.Display.LabelNightlyRate,
		&p.Display.LabelPurchasePrice,
		&p.Display.CustomNotes,
	)
	if err != nil {
		return models.Property{}, err
	}

	if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

// marshalImages serializes the image URL list for the JSONB column. A nil
// slice is stored as an empty array, never as SQL NULL.
func marshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	return json.Marshal(images)
}

// CreateProperty persists a new listing record and returns the fully
// populated [models.Property] with server-assigned fields (PropertyID,
// CreatedAt, UpdatedAt).
func (p *propertyRepository) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	imagesJSON, err := marshalImages(property.Images)
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.CreateProperty").Msg("failed to marshal images")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := p.DB.QueryRowContext(ctx, createProperty,
		property.ListingURL, property.Address, property.Bedrooms, property.Bathrooms, property.Area,
		imagesJSON, property.Description, property.ScrapedAt,
		property.ShowMonthlyRent, property.CustomMonthlyRent,
		property.ShowNightlyRate, property.CustomNightlyRate,
		property.ShowPurchasePrice, property.CustomPurchasePrice,
		property.Display.ShowBedrooms, property.Display.ShowBathrooms, property.Display.ShowArea,
		property.Display.ShowAddress, property.Display.ShowImages,
		property.Display.LabelBedrooms, property.Display.LabelBathrooms, property.Display.LabelArea,
		property.Display.LabelMonthlyRent, property.Display.LabelNightlyRate, property.Display.LabelPurchasePrice,
		property.Display.CustomNotes,
	)

	created, err := scanProperty(row)
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.CreateProperty").Str("address", property.Address).Msg("failed to insert property")
		return models.Property{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetProperty retrieves a listing by its identifier. Returns
// [ErrPropertyNotFound] when no record matches.
func (p *propertyRepository) GetProperty(ctx context.Context, propertyID string) (models.Property, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, getProperty, propertyID)

	found, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Property{}, ErrPropertyNotFound
		}

		log.Err(err).Str("func", "propertyRepository.GetProperty").Str("property_id", propertyID).Msg("failed to get property")
		return models.Property{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListProperties returns every listing in the master portfolio, newest
// first. Returns an empty slice when no records exist.
func (p *propertyRepository) ListProperties(ctx context.Context) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, listProperties)
	if queryErr != nil {
		log.Err(queryErr).Str("func", "propertyRepository.ListProperties").Msg("failed to execute query for listing properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	properties := make([]models.Property, 0, 50)

	for rows.Next() {
		property, scanErr := scanProperty(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "propertyRepository.ListProperties").Msg("failed to scan property row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		properties = append(properties, property)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "propertyRepository.ListProperties").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return properties, nil
}

// UpdateProperty overwrites the core listing fields and default pricing
// pairs of an existing record. Display customization is updated separately
// via [propertyRepository.UpdatePropertyDisplay].
//
// Returns [ErrPropertyNotFound] when the record does not exist.
func (p *propertyRepository) UpdateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	imagesJSON, err := marshalImages(property.Images)
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.UpdateProperty").Msg("failed to marshal images")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := p.DB.QueryRowContext(ctx, updateProperty,
		property.ListingURL, property.Address, property.Bedrooms, property.Bathrooms, property.Area,
		imagesJSON, property.Description,
		property.ShowMonthlyRent, property.CustomMonthlyRent,
		property.ShowNightlyRate, property.CustomNightlyRate,
		property.ShowPurchasePrice, property.CustomPurchasePrice,
		property.PropertyID,
	)

	updated, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Property{}, ErrPropertyNotFound
		}

		log.Err(err).Str("func", "propertyRepository.UpdateProperty").Str("property_id", property.PropertyID).Msg("failed to update property")
		return models.Property{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// UpdatePropertyDisplay applies a partial patch of the display
// customization columns. Fields left nil in update are not touched; a
// patch with no set fields is a no-op.
//
// Returns [ErrPropertyNotFound] when the record does not exist.
func (p *propertyRepository) UpdatePropertyDisplay(ctx context.Context, propertyID string, update models.PropertyDisplayUpdate) error {
	log := logger.FromContext(ctx)

	query, args, setCount, err := buildPropertyDisplayUpdateQuery(propertyID, update)
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.UpdatePropertyDisplay").Str("property_id", propertyID).Msg("failed to build display update query")
		return err
	}

	if setCount == 0 {
		log.Warn().Str("func", "propertyRepository.UpdatePropertyDisplay").Str("property_id", propertyID).Msg("no display fields provided")
		return nil
	}

	result, execErr := p.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", "propertyRepository.UpdatePropertyDisplay").Str("property_id", propertyID).Msg("failed to execute display update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

// DeleteProperty removes a listing. Assignment rows referencing it are
// removed by the ON DELETE CASCADE constraint. Returns
// [ErrPropertyNotFound] when the record does not exist.
func (p *propertyRepository) DeleteProperty(ctx context.Context, propertyID string) error {
	log := logger.FromContext(ctx)

	result, execErr := p.DB.ExecContext(ctx, deleteProperty, propertyID)
	if execErr != nil {
		log.Err(execErr).Str("func", "propertyRepository.DeleteProperty").Str("property_id", propertyID).Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

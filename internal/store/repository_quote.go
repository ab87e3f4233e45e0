package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/models"
)

// quoteRepository is the PostgreSQL-backed implementation of
// [QuoteRepository]. A quote is a header row in "quotes" plus ordered
// service items in "quote_service_items"; writes touching both tables run
// inside a transaction.
type quoteRepository struct {
	*DB
	logger *logger.Logger
}

// NewQuoteRepository constructs a [QuoteRepository] backed by the provided
// database connection and logger.
func NewQuoteRepository(db *DB, logger *logger.Logger) QuoteRepository {
	logger.Debug().Msg("creating quote repository")
	return &quoteRepository{
		DB:     db,
		logger: logger,
	}
}

func scanQuote(row rowScanner, q *models.Quote) error {
	return row.Scan(
		&q.QuoteID,
		&q.QuoteNumber,
		&q.ManagerID,
		&q.ClientName,
		&q.ClientEmail,
		&q.Status,
		&q.Subtotal,
		&q.TaxRate,
		&q.TaxAmount,
		&q.Total,
		&q.ValidUntil,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
}

// CreateQuote persists a quote header together with its service items in
// one transaction. Item positions are taken from the slice order.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the header →
//     [ErrQuoteNumberAlreadyExists].
//   - Any other driver-level error → wrapped low-level sentinel.
func (q *quoteRepository) CreateQuote(ctx context.Context, quote models.QuoteWithItems) (models.QuoteWithItems, error) {
	log := logger.FromContext(ctx)

	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "quoteRepository.CreateQuote").
			Str("quote_number", quote.QuoteNumber).
			Msg("failed to begin transaction")
		return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createQuote,
		quote.QuoteNumber, quote.ManagerID, quote.ClientName, quote.ClientEmail, quote.Status,
		quote.Subtotal, quote.TaxRate, quote.TaxAmount, quote.Total, quote.ValidUntil)

	if err := scanQuote(row, &quote.Quote); err != nil {
		log.Err(err).
			Str("func", "quoteRepository.CreateQuote").
			Str("quote_number", quote.QuoteNumber).
			Msg("failed to insert quote header")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.QuoteWithItems{}, ErrQuoteNumberAlreadyExists
		default:
			return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	items, err := q.insertItems(ctx, tx, quote.QuoteID, quote.Items)
	if err != nil {
		return models.QuoteWithItems{}, err
	}
	quote.Items = items

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "quoteRepository.CreateQuote").
			Str("quote_id", quote.QuoteID).
			Msg("failed to commit transaction")
		return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return quote, nil
}

// insertItems writes the quote's service items inside the given
// transaction, positions assigned from slice order, and returns the items
// with server-assigned IDs.
func (q *quoteRepository) insertItems(ctx context.Context, tx *sql.Tx, quoteID string, items []models.QuoteServiceItem) ([]models.QuoteServiceItem, error) {
	log := logger.FromContext(ctx)

	stmt, err := tx.PrepareContext(ctx, insertQuoteItem)
	if err != nil {
		log.Err(err).
			Str("func", "quoteRepository.insertItems").
			Str("quote_id", quoteID).
			Msg("failed to prepare item insert statement")
		return nil, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	inserted := make([]models.QuoteServiceItem, 0, len(items))

	for idx, item := range items {
		imagesJSON, marshalErr := marshalImages(item.Images)
		if marshalErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, marshalErr)
		}

		item.QuoteID = quoteID
		item.Position = idx

		scanErr := stmt.QueryRowContext(ctx, quoteID, item.Name, item.Description, item.Price, imagesJSON, idx).Scan(&item.ItemID)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "quoteRepository.insertItems").
				Str("quote_id", quoteID).
				Int("position", idx).
				Msg("failed to insert quote service item")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		inserted = append(inserted, item)
	}

	return inserted, nil
}

// GetQuote retrieves a quote header together with its ordered service
// items. Returns [ErrQuoteNotFound] when the header does not exist.
func (q *quoteRepository) GetQuote(ctx context.Context, quoteID string) (models.QuoteWithItems, error) {
	log := logger.FromContext(ctx)

	var quote models.QuoteWithItems
	if err := scanQuote(q.DB.QueryRowContext(ctx, getQuote, quoteID), &quote.Quote); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuoteWithItems{}, ErrQuoteNotFound
		}

		log.Err(err).Str("func", "quoteRepository.GetQuote").Str("quote_id", quoteID).Msg("failed to get quote")
		return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items, err := q.getItems(ctx, quoteID)
	if err != nil {
		return models.QuoteWithItems{}, err
	}
	quote.Items = items

	return quote, nil
}

// GetQuoteByNumber retrieves a quote by its public number together with
// its ordered service items. This is the unauthenticated lookup behind
// the client-facing quote page. Returns [ErrQuoteNotFound] when no quote
// carries the number.
func (q *quoteRepository) GetQuoteByNumber(ctx context.Context, quoteNumber string) (models.QuoteWithItems, error) {
	log := logger.FromContext(ctx)

	var quote models.QuoteWithItems
	if err := scanQuote(q.DB.QueryRowContext(ctx, getQuoteByNumber, quoteNumber), &quote.Quote); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuoteWithItems{}, ErrQuoteNotFound
		}

		log.Err(err).Str("func", "quoteRepository.GetQuoteByNumber").Str("quote_number", quoteNumber).Msg("failed to get quote by number")
		return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items, err := q.getItems(ctx, quote.QuoteID)
	if err != nil {
		return models.QuoteWithItems{}, err
	}
	quote.Items = items

	return quote, nil
}

func (q *quoteRepository) getItems(ctx context.Context, quoteID string) ([]models.QuoteServiceItem, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := q.DB.QueryContext(ctx, getQuoteItems, quoteID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "quoteRepository.getItems").
			Str("quote_id", quoteID).
			Msg("failed to execute query for quote items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	items := make([]models.QuoteServiceItem, 0, 10)

	for rows.Next() {
		var item models.QuoteServiceItem
		var imagesJSON []byte

		scanErr := rows.Scan(&item.ItemID, &item.QuoteID, &item.Name, &item.Description, &item.Price, &imagesJSON, &item.Position)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "quoteRepository.getItems").Msg("failed to scan quote item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if err := json.Unmarshal(imagesJSON, &item.Images); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "quoteRepository.getItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// ListQuotes returns every quote header owned by the manager, newest
// first. Items are not loaded for list views.
func (q *quoteRepository) ListQuotes(ctx context.Context, managerID string) ([]models.Quote, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := q.DB.QueryContext(ctx, listQuotes, managerID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "quoteRepository.ListQuotes").
			Str("manager_id", managerID).
			Msg("failed to execute query for listing quotes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	quotes := make([]models.Quote, 0, 20)

	for rows.Next() {
		var quote models.Quote

		if scanErr := scanQuote(rows, &quote); scanErr != nil {
			log.Err(scanErr).Str("func", "quoteRepository.ListQuotes").Msg("failed to scan quote row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		quotes = append(quotes, quote)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "quoteRepository.ListQuotes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return quotes, nil
}

// UpdateQuote rewrites the quote header and replaces all service items in
// one transaction. Returns [ErrQuoteNotFound] when the header does not
// exist. Status transitions go through
// [quoteRepository.UpdateQuoteStatus]; the quote number is immutable.
func (q *quoteRepository) UpdateQuote(ctx context.Context, quote models.QuoteWithItems) (models.QuoteWithItems, error) {
	log := logger.FromContext(ctx)

	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "quoteRepository.UpdateQuote").
			Str("quote_id", quote.QuoteID).
			Msg("failed to begin transaction")
		return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, updateQuote,
		quote.ClientName, quote.ClientEmail,
		quote.Subtotal, quote.TaxRate, quote.TaxAmount, quote.Total,
		quote.ValidUntil, quote.QuoteID)

	if err := scanQuote(row, &quote.Quote); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuoteWithItems{}, ErrQuoteNotFound
		}

		log.Err(err).
			Str("func", "quoteRepository.UpdateQuote").
			Str("quote_id", quote.QuoteID).
			Msg("failed to update quote header")
		return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, execErr := tx.ExecContext(ctx, deleteQuoteItems, quote.QuoteID); execErr != nil {
		log.Err(execErr).
			Str("func", "quoteRepository.UpdateQuote").
			Str("quote_id", quote.QuoteID).
			Msg("failed to delete existing quote items")
		return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	items, err := q.insertItems(ctx, tx, quote.QuoteID, quote.Items)
	if err != nil {
		return models.QuoteWithItems{}, err
	}
	quote.Items = items

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "quoteRepository.UpdateQuote").
			Str("quote_id", quote.QuoteID).
			Msg("failed to commit transaction")
		return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return quote, nil
}

// UpdateQuoteStatus sets only the lifecycle status. Returns
// [ErrQuoteNotFound] when the quote does not exist.
func (q *quoteRepository) UpdateQuoteStatus(ctx context.Context, quoteID string, status models.QuoteStatus) error {
	log := logger.FromContext(ctx)

	result, execErr := q.DB.ExecContext(ctx, updateQuoteStatus, quoteID, status)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "quoteRepository.UpdateQuoteStatus").
			Str("quote_id", quoteID).
			Str("status", string(status)).
			Msg("failed to execute status update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrQuoteNotFound
	}

	return nil
}

// DeleteQuote removes a quote header; its items are removed by ON DELETE
// CASCADE. Returns [ErrQuoteNotFound] when the quote does not exist.
func (q *quoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	log := logger.FromContext(ctx)

	result, execErr := q.DB.ExecContext(ctx, deleteQuote, quoteID)
	if execErr != nil {
		log.Err(execErr).Str("func", "quoteRepository.DeleteQuote").Str("quote_id", quoteID).Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrQuoteNotFound
	}

	return nil
}

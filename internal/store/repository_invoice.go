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

// invoiceRepository is the PostgreSQL-backed implementation of
// [InvoiceRepository]. An invoice is a header row in "invoices" plus
// ordered line items in "invoice_line_items"; writes touching both tables
// run inside a transaction.
type invoiceRepository struct {
	*DB
	logger *logger.Logger
}

// NewInvoiceRepository constructs an [InvoiceRepository] backed by the
// provided database connection and logger.
func NewInvoiceRepository(db *DB, logger *logger.Logger) InvoiceRepository {
	logger.Debug().Msg("creating invoice repository")
	return &invoiceRepository{
		DB:     db,
		logger: logger,
	}
}

func scanInvoice(row rowScanner, inv *models.Invoice) error {
	return row.Scan(
		&inv.InvoiceID,
		&inv.InvoiceNumber,
		&inv.ManagerID,
		&inv.ClientName,
		&inv.ClientEmail,
		&inv.Status,
		&inv.Subtotal,
		&inv.TaxRate,
		&inv.TaxAmount,
		&inv.Total,
		&inv.DueDate,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
}

// CreateInvoice persists an invoice header together with its line items in
// one transaction. Item positions are taken from the slice order.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the header →
//     [ErrInvoiceNumberAlreadyExists].
//   - Any other driver-level error → wrapped low-level sentinel.
func (i *invoiceRepository) CreateInvoice(ctx context.Context, invoice models.InvoiceWithItems) (models.InvoiceWithItems, error) {
	log := logger.FromContext(ctx)

	tx, err := i.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.CreateInvoice").
			Str("invoice_number", invoice.InvoiceNumber).
			Msg("failed to begin transaction")
		return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createInvoice,
		invoice.InvoiceNumber, invoice.ManagerID, invoice.ClientName, invoice.ClientEmail, invoice.Status,
		invoice.Subtotal, invoice.TaxRate, invoice.TaxAmount, invoice.Total, invoice.DueDate)

	if err := scanInvoice(row, &invoice.Invoice); err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.CreateInvoice").
			Str("invoice_number", invoice.InvoiceNumber).
			Msg("failed to insert invoice header")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.InvoiceWithItems{}, ErrInvoiceNumberAlreadyExists
		default:
			return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	items, err := i.insertItems(ctx, tx, invoice.InvoiceID, invoice.Items)
	if err != nil {
		return models.InvoiceWithItems{}, err
	}
	invoice.Items = items

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "invoiceRepository.CreateInvoice").
			Str("invoice_id", invoice.InvoiceID).
			Msg("failed to commit transaction")
		return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return invoice, nil
}

func (i *invoiceRepository) insertItems(ctx context.Context, tx *sql.Tx, invoiceID string, items []models.InvoiceLineItem) ([]models.InvoiceLineItem, error) {
	log := logger.FromContext(ctx)

	stmt, err := tx.PrepareContext(ctx, insertInvoiceItem)
	if err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.insertItems").
			Str("invoice_id", invoiceID).
			Msg("failed to prepare item insert statement")
		return nil, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	inserted := make([]models.InvoiceLineItem, 0, len(items))

	for idx, item := range items {
		item.InvoiceID = invoiceID
		item.Position = idx

		scanErr := stmt.QueryRowContext(ctx, invoiceID, item.Description, item.Quantity, item.UnitPrice, item.Total, idx).Scan(&item.ItemID)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "invoiceRepository.insertItems").
				Str("invoice_id", invoiceID).
				Int("position", idx).
				Msg("failed to insert invoice line item")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		inserted = append(inserted, item)
	}

	return inserted, nil
}

// GetInvoice retrieves an invoice header together with its ordered line
// items. Returns [ErrInvoiceNotFound] when the header does not exist.
func (i *invoiceRepository) GetInvoice(ctx context.Context, invoiceID string) (models.InvoiceWithItems, error) {
	log := logger.FromContext(ctx)

	var invoice models.InvoiceWithItems
	if err := scanInvoice(i.DB.QueryRowContext(ctx, getInvoice, invoiceID), &invoice.Invoice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InvoiceWithItems{}, ErrInvoiceNotFound
		}

		log.Err(err).Str("func", "invoiceRepository.GetInvoice").Str("invoice_id", invoiceID).Msg("failed to get invoice")
		return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items, err := i.getItems(ctx, invoiceID)
	if err != nil {
		return models.InvoiceWithItems{}, err
	}
	invoice.Items = items

	return invoice, nil
}

// GetInvoiceByNumber retrieves an invoice by its public number together
// with its ordered line items. Returns [ErrInvoiceNotFound] when no
// invoice carries the number.
func (i *invoiceRepository) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (models.InvoiceWithItems, error) {
	log := logger.FromContext(ctx)

	var invoice models.InvoiceWithItems
	if err := scanInvoice(i.DB.QueryRowContext(ctx, getInvoiceByNumber, invoiceNumber), &invoice.Invoice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InvoiceWithItems{}, ErrInvoiceNotFound
		}

		log.Err(err).Str("func", "invoiceRepository.GetInvoiceByNumber").Str("invoice_number", invoiceNumber).Msg("failed to get invoice by number")
		return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items, err := i.getItems(ctx, invoice.InvoiceID)
	if err != nil {
		return models.InvoiceWithItems{}, err
	}
	invoice.Items = items

	return invoice, nil
}

func (i *invoiceRepository) getItems(ctx context.Context, invoiceID string) ([]models.InvoiceLineItem, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := i.DB.QueryContext(ctx, getInvoiceItems, invoiceID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "invoiceRepository.getItems").
			Str("invoice_id", invoiceID).
			Msg("failed to execute query for invoice items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	items := make([]models.InvoiceLineItem, 0, 10)

	for rows.Next() {
		var item models.InvoiceLineItem

		scanErr := rows.Scan(&item.ItemID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPrice, &item.Total, &item.Position)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "invoiceRepository.getItems").Msg("failed to scan invoice item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "invoiceRepository.getItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// ListInvoices returns every invoice header owned by the manager, newest
// first. Items are not loaded for list views.
func (i *invoiceRepository) ListInvoices(ctx context.Context, managerID string) ([]models.Invoice, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := i.DB.QueryContext(ctx, listInvoices, managerID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "invoiceRepository.ListInvoices").
			Str("manager_id", managerID).
			Msg("failed to execute query for listing invoices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	invoices := make([]models.Invoice, 0, 20)

	for rows.Next() {
		var invoice models.Invoice

		if scanErr := scanInvoice(rows, &invoice); scanErr != nil {
			log.Err(scanErr).Str("func", "invoiceRepository.ListInvoices").Msg("failed to scan invoice row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		invoices = append(invoices, invoice)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "invoiceRepository.ListInvoices").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return invoices, nil
}

// UpdateInvoice rewrites the invoice header and replaces all line items in
// one transaction. Returns [ErrInvoiceNotFound] when the header does not
// exist. Status transitions go through
// [invoiceRepository.UpdateInvoiceStatus]; the invoice number is immutable.
func (i *invoiceRepository) UpdateInvoice(ctx context.Context, invoice models.InvoiceWithItems) (models.InvoiceWithItems, error) {
	log := logger.FromContext(ctx)

	tx, err := i.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.UpdateInvoice").
			Str("invoice_id", invoice.InvoiceID).
			Msg("failed to begin transaction")
		return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, updateInvoice,
		invoice.ClientName, invoice.ClientEmail,
		invoice.Subtotal, invoice.TaxRate, invoice.TaxAmount, invoice.Total,
		invoice.DueDate, invoice.InvoiceID)

	if err := scanInvoice(row, &invoice.Invoice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InvoiceWithItems{}, ErrInvoiceNotFound
		}

		log.Err(err).
			Str("func", "invoiceRepository.UpdateInvoice").
			Str("invoice_id", invoice.InvoiceID).
			Msg("failed to update invoice header")
		return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, execErr := tx.ExecContext(ctx, deleteInvoiceItems, invoice.InvoiceID); execErr != nil {
		log.Err(execErr).
			Str("func", "invoiceRepository.UpdateInvoice").
			Str("invoice_id", invoice.InvoiceID).
			Msg("failed to delete existing invoice items")
		return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	items, err := i.insertItems(ctx, tx, invoice.InvoiceID, invoice.Items)
	if err != nil {
		return models.InvoiceWithItems{}, err
	}
	invoice.Items = items

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "invoiceRepository.UpdateInvoice").
			Str("invoice_id", invoice.InvoiceID).
			Msg("failed to commit transaction")
		return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return invoice, nil
}

// UpdateInvoiceStatus sets only the lifecycle status. Returns
// [ErrInvoiceNotFound] when the invoice does not exist.
func (i *invoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status models.InvoiceStatus) error {
	log := logger.FromContext(ctx)

	result, execErr := i.DB.ExecContext(ctx, updateInvoiceStatus, invoiceID, status)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "invoiceRepository.UpdateInvoiceStatus").
			Str("invoice_id", invoiceID).
			Str("status", string(status)).
			Msg("failed to execute status update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

// DeleteInvoice removes an invoice header; its items are removed by ON
// DELETE CASCADE. Returns [ErrInvoiceNotFound] when the invoice does not
// exist.
func (i *invoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	log := logger.FromContext(ctx)

	result, execErr := i.DB.ExecContext(ctx, deleteInvoice, invoiceID)
	if execErr != nil {
		log.Err(execErr).Str("func", "invoiceRepository.DeleteInvoice").Str("invoice_id", invoiceID).Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mvoronin/estate-keeper/models"
)

func newTestInvoiceRepo(t *testing.T) (*invoiceRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &invoiceRepository{
		DB:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func invoiceHeaderRow(invoiceID, invoiceNumber string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.
		NewRows([]string{
			"invoice_id", "invoice_number", "manager_id", "client_name", "client_email", "status",
			"subtotal", "tax_rate", "tax_amount", "total", "due_date", "created_at", "updated_at",
		}).
		AddRow(invoiceID, invoiceNumber, "0198c5e2-0000-7000-8000-000000000001",
			"Alexander Thompson", "", "draft",
			5000.0, 21.0, 1050.0, 6050.0, nil, now, now)
}

func TestCreateInvoice_InsertsHeaderAndItems(t *testing.T) {
	repo, mock, db := newTestInvoiceRepo(t)
	defer db.Close()

	ctx := context.Background()
	invoiceID := "0198c5e2-dddd-7000-8000-000000000001"

	invoice := models.InvoiceWithItems{
		Invoice: models.Invoice{
			InvoiceNumber: "INV-2026-0001",
			ManagerID:     "0198c5e2-0000-7000-8000-000000000001",
			ClientName:    "Alexander Thompson",
			Status:        models.InvoiceStatusDraft,
			Subtotal:      5000.0,
			TaxRate:       21.0,
			TaxAmount:     1050.0,
			Total:         6050.0,
		},
		Items: []models.InvoiceLineItem{
			{Description: "Relocation concierge", Quantity: 2, UnitPrice: 2500.0, Total: 5000.0},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO invoices").
		WillReturnRows(invoiceHeaderRow(invoiceID, invoice.InvoiceNumber))
	stmt := mock.ExpectPrepare("INSERT INTO invoice_line_items")
	stmt.ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}).AddRow("line-1"))
	mock.ExpectCommit()

	created, err := repo.CreateInvoice(ctx, invoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.InvoiceID != invoiceID {
		t.Errorf("expected invoice id %s, got %s", invoiceID, created.InvoiceID)
	}
	if len(created.Items) != 1 || created.Items[0].InvoiceID != invoiceID {
		t.Errorf("expected item bound to invoice %s, got %+v", invoiceID, created.Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestCreateInvoice_NumberCollision(t *testing.T) {
	repo, mock, db := newTestInvoiceRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO invoices").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateInvoice(ctx, models.InvoiceWithItems{Invoice: models.Invoice{InvoiceNumber: "INV-2026-0001"}})
	if !errors.Is(err, ErrInvoiceNumberAlreadyExists) {
		t.Fatalf("expected ErrInvoiceNumberAlreadyExists, got %v", err)
	}
}

func TestGetInvoice_NotFound(t *testing.T) {
	repo, mock, db := newTestInvoiceRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT invoice_id").
		WithArgs("missing-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetInvoice(ctx, "missing-id")
	if !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestUpdateInvoiceStatus_NotFound(t *testing.T) {
	repo, mock, db := newTestInvoiceRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE invoices").
		WithArgs("missing-id", models.InvoiceStatusPaid).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateInvoiceStatus(ctx, "missing-id", models.InvoiceStatusPaid)
	if !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

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

func newTestQuoteRepo(t *testing.T) (*quoteRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &quoteRepository{
		DB:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func quoteHeaderColumns() []string {
	return []string{
		"quote_id", "quote_number", "manager_id", "client_name", "client_email", "status",
		"subtotal", "tax_rate", "tax_amount", "total", "valid_until", "created_at", "updated_at",
	}
}

func quoteHeaderRow(quoteID, quoteNumber string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(quoteHeaderColumns()).
		AddRow(quoteID, quoteNumber, "0198c5e2-0000-7000-8000-000000000001",
			"Alexander Thompson", "a.thompson@clients.example", "draft",
			8500.0, 21.0, 1785.0, 10285.0, nil, now, now)
}

func TestCreateQuote_InsertsHeaderAndItems(t *testing.T) {
	repo, mock, db := newTestQuoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	quoteID := "0198c5e2-cccc-7000-8000-000000000001"

	quote := models.QuoteWithItems{
		Quote: models.Quote{
			QuoteNumber: "Q-2026-0001",
			ManagerID:   "0198c5e2-0000-7000-8000-000000000001",
			ClientName:  "Alexander Thompson",
			Status:      models.QuoteStatusDraft,
			Subtotal:    8500.0,
			TaxRate:     21.0,
			TaxAmount:   1785.0,
			Total:       10285.0,
		},
		Items: []models.QuoteServiceItem{
			{Name: "Relocation concierge", Price: 5000.0},
			{Name: "Private viewing tour", Price: 3500.0},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO quotes").
		WillReturnRows(quoteHeaderRow(quoteID, quote.QuoteNumber))
	stmt := mock.ExpectPrepare("INSERT INTO quote_service_items")
	stmt.ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}).AddRow("item-1"))
	stmt.ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}).AddRow("item-2"))
	mock.ExpectCommit()

	created, err := repo.CreateQuote(ctx, quote)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.QuoteID != quoteID {
		t.Errorf("expected quote id %s, got %s", quoteID, created.QuoteID)
	}
	if len(created.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(created.Items))
	}
	if created.Items[0].Position != 0 || created.Items[1].Position != 1 {
		t.Errorf("expected item positions 0 and 1, got %d and %d", created.Items[0].Position, created.Items[1].Position)
	}
	if created.Items[1].QuoteID != quoteID {
		t.Errorf("expected item bound to quote %s, got %s", quoteID, created.Items[1].QuoteID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestCreateQuote_NumberCollision(t *testing.T) {
	repo, mock, db := newTestQuoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO quotes").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateQuote(ctx, models.QuoteWithItems{Quote: models.Quote{QuoteNumber: "Q-2026-0001"}})
	if !errors.Is(err, ErrQuoteNumberAlreadyExists) {
		t.Fatalf("expected ErrQuoteNumberAlreadyExists, got %v", err)
	}
}

func TestGetQuote_NotFound(t *testing.T) {
	repo, mock, db := newTestQuoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT quote_id").
		WithArgs("missing-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetQuote(ctx, "missing-id")
	if !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestUpdateQuote_ReplacesItems(t *testing.T) {
	repo, mock, db := newTestQuoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	quoteID := "0198c5e2-cccc-7000-8000-000000000001"

	quote := models.QuoteWithItems{
		Quote: models.Quote{QuoteID: quoteID, QuoteNumber: "Q-2026-0001"},
		Items: []models.QuoteServiceItem{
			{Name: "Relocation concierge", Price: 5200.0},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE quotes").
		WillReturnRows(quoteHeaderRow(quoteID, quote.QuoteNumber))
	mock.ExpectExec("DELETE FROM quote_service_items").
		WithArgs(quoteID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	stmt := mock.ExpectPrepare("INSERT INTO quote_service_items")
	stmt.ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}).AddRow("item-3"))
	mock.ExpectCommit()

	updated, err := repo.UpdateQuote(ctx, quote)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("expected 1 item after replace, got %d", len(updated.Items))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestUpdateQuoteStatus_NotFound(t *testing.T) {
	repo, mock, db := newTestQuoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE quotes").
		WithArgs("missing-id", models.QuoteStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateQuoteStatus(ctx, "missing-id", models.QuoteStatusSent)
	if !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

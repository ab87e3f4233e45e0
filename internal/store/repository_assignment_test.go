// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/models"
)

// rawValueConverter lets slice arguments (pgx supports them natively)
// through sqlmock's parameter conversion unchanged.
type rawValueConverter struct{}

func (rawValueConverter) ConvertValue(v any) (driver.Value, error) {
	return driver.Value(v), nil
}

func newTestAssignmentRepo(t *testing.T) (*assignmentRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(rawValueConverter{}))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &assignmentRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

const (
	testClientID    = "0198c5e2-aaaa-7000-8000-000000000001"
	testPropertyID  = "0198c5e2-bbbb-7000-8000-000000000001"
	testPropertyID2 = "0198c5e2-bbbb-7000-8000-000000000002"
)

func assignmentRows(position int) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{
			"client_id", "property_id", "position",
			"show_monthly_rent_to_client", "show_nightly_rate_to_client", "show_purchase_price_to_client",
			"created_at",
		}).
		AddRow(testClientID, testPropertyID, position, true, true, true, time.Now())
}

func TestAssign_AppendsAtEnd(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO client_property_assignments").
		WithArgs(testClientID, testPropertyID, true, true, true).
		WillReturnRows(assignmentRows(3))

	assignment, err := repo.Assign(ctx, testClientID, testPropertyID, models.AllPricingVisible())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assignment.Position != 3 {
		t.Errorf("expected position 3, got %d", assignment.Position)
	}
	if !assignment.Pricing.ShowMonthlyRent || !assignment.Pricing.ShowNightlyRate || !assignment.Pricing.ShowPurchasePrice {
		t.Errorf("expected fully visible pricing triple, got %+v", assignment.Pricing)
	}
}

func TestAssign_StoresChosenTriple(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{
			"client_id", "property_id", "position",
			"show_monthly_rent_to_client", "show_nightly_rate_to_client", "show_purchase_price_to_client",
			"created_at",
		}).
		AddRow(testClientID, testPropertyID, 0, false, true, false, time.Now())

	mock.ExpectQuery("INSERT INTO client_property_assignments").
		WithArgs(testClientID, testPropertyID, false, true, false).
		WillReturnRows(rows)

	assignment, err := repo.Assign(ctx, testClientID, testPropertyID, models.PricingVisibility{ShowNightlyRate: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assignment.Pricing.ShowMonthlyRent || !assignment.Pricing.ShowNightlyRate || assignment.Pricing.ShowPurchasePrice {
		t.Errorf("expected the chosen triple back, got %+v", assignment.Pricing)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestAssign_AlreadyAssigned(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO client_property_assignments").
		WithArgs(testClientID, testPropertyID, true, true, true).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Assign(ctx, testClientID, testPropertyID, models.AllPricingVisible())
	if !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
	}
}

func TestUnassign_NotFound(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM client_property_assignments").
		WithArgs(testClientID, testPropertyID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Unassign(ctx, testClientID, testPropertyID)
	if !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
	}
}

func TestUnassign_Success(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM client_property_assignments").
		WithArgs(testClientID, testPropertyID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Unassign(ctx, testClientID, testPropertyID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateVisibility_OverwritesFullTriple(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()
	pricing := models.PricingVisibility{ShowMonthlyRent: false, ShowNightlyRate: true, ShowPurchasePrice: false}

	mock.ExpectExec("UPDATE client_property_assignments").
		WithArgs(testClientID, testPropertyID, false, true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateVisibility(ctx, testClientID, testPropertyID, pricing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateVisibility_NotFound(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE client_property_assignments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateVisibility(ctx, testClientID, testPropertyID, models.AllPricingVisible())
	if !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
	}
}

func assignedPropertyColumns() []string {
	return []string{
		"property_id", "listing_url", "address", "bedrooms", "bathrooms", "area",
		"images", "description", "scraped_at", "created_at", "updated_at",
		"show_monthly_rent", "custom_monthly_rent",
		"show_nightly_rate", "custom_nightly_rate",
		"show_purchase_price", "custom_purchase_price",
		"show_bedrooms", "show_bathrooms", "show_area", "show_address", "show_images",
		"label_bedrooms", "label_bathrooms", "label_area",
		"label_monthly_rent", "label_nightly_rate", "label_purchase_price",
		"custom_notes",
		"position",
		"show_monthly_rent_to_client", "show_nightly_rate_to_client", "show_purchase_price_to_client",
	}
}

func assignedPropertyRow(rows *sqlmock.Rows, propertyID, address string, position int, showMonthlyRent bool) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		propertyID, "https://listings.example/"+propertyID, address, "4", "3.5", "420 m²",
		[]byte(`["https://img.example/1.jpg"]`), "Sea view villa", nil, now, now,
		true, 12500.0,
		false, nil,
		true, 2500000.0,
		true, true, true, true, true,
		"", "", "", "", "", "",
		"",
		position,
		showMonthlyRent, true, true,
	)
}

func TestListAssigned_ReturnsPortfolioOrder(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(assignedPropertyColumns())
	rows = assignedPropertyRow(rows, testPropertyID, "Villa Azure, Marbella", 0, true)
	rows = assignedPropertyRow(rows, testPropertyID2, "Penthouse Aurora, Monaco", 1, false)

	mock.ExpectQuery("SELECT p.property_id").
		WithArgs(testClientID).
		WillReturnRows(rows)

	assigned, err := repo.ListAssigned(ctx, testClientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assigned) != 2 {
		t.Fatalf("expected 2 assigned properties, got %d", len(assigned))
	}
	if assigned[0].Position != 0 || assigned[1].Position != 1 {
		t.Errorf("expected positions 0 and 1, got %d and %d", assigned[0].Position, assigned[1].Position)
	}
	if assigned[1].Pricing.ShowMonthlyRent {
		t.Error("expected monthly rent hidden for second assignment")
	}
	if len(assigned[0].Property.Images) != 1 {
		t.Errorf("expected 1 image, got %d", len(assigned[0].Property.Images))
	}
	if assigned[0].Property.Address != "Villa Azure, Marbella" {
		t.Errorf("unexpected address %q", assigned[0].Property.Address)
	}
}

func TestListAssigned_Empty(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT p.property_id").
		WithArgs(testClientID).
		WillReturnRows(sqlmock.NewRows(assignedPropertyColumns()))

	assigned, err := repo.ListAssigned(ctx, testClientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assigned) != 0 {
		t.Errorf("expected empty portfolio, got %d items", len(assigned))
	}
}

func TestBulkAssign_SkipsExistingAssignments(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(testClientID).
		WillReturnRows(sqlmock.NewRows([]string{"next_position"}).AddRow(5))
	// one of the two requested properties is already assigned
	mock.ExpectExec("INSERT INTO client_property_assignments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.BulkAssign(ctx, testClientID, []string{testPropertyID, testPropertyID2}, models.AllPricingVisible())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("expected count 1, got %d", result.Count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestBulkAssign_AppliesSharedTriple(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()
	hidden := models.PricingVisibility{ShowMonthlyRent: true}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(testClientID).
		WillReturnRows(sqlmock.NewRows([]string{"next_position"}).AddRow(0))
	// every row carries the same caller-chosen triple
	mock.ExpectExec("INSERT INTO client_property_assignments").
		WithArgs(
			testClientID, testPropertyID, 0, true, false, false,
			testClientID, testPropertyID2, 1, true, false, false,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	result, err := repo.BulkAssign(ctx, testClientID, []string{testPropertyID, testPropertyID2}, hidden)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 2 {
		t.Errorf("expected count 2, got %d", result.Count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestBulkAssign_EmptyInputIsNoOp(t *testing.T) {
	repo, _, db := newTestAssignmentRepo(t)
	defer db.Close()

	result, err := repo.BulkAssign(context.Background(), testClientID, nil, models.AllPricingVisible())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("expected count 0, got %d", result.Count)
	}
}

func TestBulkAssign_RollsBackOnInsertFailure(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(testClientID).
		WillReturnRows(sqlmock.NewRows([]string{"next_position"}).AddRow(0))
	mock.ExpectExec("INSERT INTO client_property_assignments").
		WillReturnError(errors.New("db failure"))
	mock.ExpectRollback()

	_, err := repo.BulkAssign(ctx, testClientID, []string{testPropertyID}, models.AllPricingVisible())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected wrapped ErrExecutingQuery, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestBulkUnassign_CountsDeletedRowsOnly(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	// two requested, only one was actually assigned
	mock.ExpectExec("DELETE FROM client_property_assignments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.BulkUnassign(ctx, testClientID, []string{testPropertyID, testPropertyID2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("expected count 1, got %d", result.Count)
	}
}

func TestBulkUnassign_EmptyInputIsNoOp(t *testing.T) {
	repo, _, db := newTestAssignmentRepo(t)
	defer db.Close()

	result, err := repo.BulkUnassign(context.Background(), testClientID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("expected count 0, got %d", result.Count)
	}
}

func TestPersistOrder_WritesIndexAsPosition(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	stmt := mock.ExpectPrepare("UPDATE client_property_assignments")
	stmt.ExpectExec().
		WithArgs(testClientID, testPropertyID2, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	stmt.ExpectExec().
		WithArgs(testClientID, testPropertyID, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.PersistOrder(ctx, testClientID, []string{testPropertyID2, testPropertyID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestPersistOrder_RollsBackOnFailure(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	stmt := mock.ExpectPrepare("UPDATE client_property_assignments")
	stmt.ExpectExec().
		WithArgs(testClientID, testPropertyID, 0).
		WillReturnError(errors.New("db failure"))
	mock.ExpectRollback()

	err := repo.PersistOrder(ctx, testClientID, []string{testPropertyID})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected wrapped ErrExecutingStatement, got %v", err)
	}
}

func TestListClientSlugsForProperty_ReturnsAffectedSlugs(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT c.slug").
		WithArgs(testPropertyID).
		WillReturnRows(sqlmock.NewRows([]string{"slug"}).
			AddRow("alexander-thompson").
			AddRow("isabella-laurent"))

	slugs, err := repo.ListClientSlugsForProperty(context.Background(), testPropertyID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slugs) != 2 || slugs[0] != "alexander-thompson" || slugs[1] != "isabella-laurent" {
		t.Errorf("unexpected slugs: %v", slugs)
	}
}

func TestListClientSlugsForProperty_NoAssignments(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT c.slug").
		WithArgs(testPropertyID).
		WillReturnRows(sqlmock.NewRows([]string{"slug"}))

	slugs, err := repo.ListClientSlugsForProperty(context.Background(), testPropertyID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slugs) != 0 {
		t.Errorf("expected no slugs, got %v", slugs)
	}
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	return &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()}, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func newTestManagerRepo(t *testing.T) (*managerRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &managerRepository{
		db:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func managerRows(manager models.Manager) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"manager_id", "email", "name", "phone", "password_hash", "created_at"}).
		AddRow(manager.ManagerID, manager.Email, manager.Name, manager.Phone, manager.PasswordHash, manager.CreatedAt)
}

func TestCreateManager_Success(t *testing.T) {
	repo, mock, db := newTestManagerRepo(t)
	defer db.Close()

	ctx := context.Background()
	manager := models.Manager{
		Email:        "maria@estates.example",
		Name:         "Maria",
		Phone:        "+34 600 000 000",
		PasswordHash: "$2a$10$hash",
	}

	saved := manager
	saved.ManagerID = "0198c5e2-0000-7000-8000-000000000001"
	saved.CreatedAt = time.Now()

	mock.ExpectQuery("INSERT INTO property_managers").
		WithArgs(manager.Email, manager.Name, manager.Phone, manager.PasswordHash).
		WillReturnRows(managerRows(saved))

	created, err := repo.CreateManager(ctx, manager)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ManagerID != saved.ManagerID {
		t.Errorf("expected manager id %s, got %s", saved.ManagerID, created.ManagerID)
	}
	if created.Email != manager.Email {
		t.Errorf("expected email %s, got %s", manager.Email, created.Email)
	}
}

func TestCreateManager_EmailAlreadyExists(t *testing.T) {
	repo, mock, db := newTestManagerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO property_managers").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateManager(ctx, models.Manager{Email: "maria@estates.example"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateManager_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestManagerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO property_managers").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateManager(ctx, models.Manager{Email: "maria@estates.example"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected wrapped ErrExecutingQuery, got %v", err)
	}
}

func TestFindManagerByEmail_Success(t *testing.T) {
	repo, mock, db := newTestManagerRepo(t)
	defer db.Close()

	ctx := context.Background()
	manager := models.Manager{
		ManagerID:    "0198c5e2-0000-7000-8000-000000000001",
		Email:        "maria@estates.example",
		Name:         "Maria",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}

	mock.ExpectQuery("SELECT manager_id").
		WithArgs(manager.Email).
		WillReturnRows(managerRows(manager))

	found, err := repo.FindManagerByEmail(ctx, manager.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ManagerID != manager.ManagerID {
		t.Errorf("expected manager id %s, got %s", manager.ManagerID, found.ManagerID)
	}
}

func TestFindManagerByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestManagerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT manager_id").
		WithArgs("nobody@estates.example").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindManagerByEmail(ctx, "nobody@estates.example")
	if !errors.Is(err, ErrNoManagerWasFound) {
		t.Fatalf("expected ErrNoManagerWasFound, got %v", err)
	}
}

func TestGetManager_NotFound(t *testing.T) {
	repo, mock, db := newTestManagerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT manager_id").
		WithArgs("missing-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetManager(ctx, "missing-id")
	if !errors.Is(err, ErrNoManagerWasFound) {
		t.Fatalf("expected ErrNoManagerWasFound, got %v", err)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvoronin/estate-keeper/internal/config"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/internal/utils"
	"github.com/mvoronin/estate-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.ManagerRepository
// ─────────────────────────────────────────────

type mockManagerRepository struct {
	createFn      func(ctx context.Context, manager models.Manager) (models.Manager, error)
	findByEmailFn func(ctx context.Context, email string) (models.Manager, error)
	getFn         func(ctx context.Context, managerID string) (models.Manager, error)
}

func (m *mockManagerRepository) CreateManager(ctx context.Context, manager models.Manager) (models.Manager, error) {
	if m.createFn != nil {
		return m.createFn(ctx, manager)
	}
	return manager, nil
}

func (m *mockManagerRepository) FindManagerByEmail(ctx context.Context, email string) (models.Manager, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.Manager{}, nil
}

func (m *mockManagerRepository) GetManager(ctx context.Context, managerID string) (models.Manager, error) {
	if m.getFn != nil {
		return m.getFn(ctx, managerID)
	}
	return models.Manager{}, nil
}

func newTestAuthService(repo *mockManagerRepository) AuthService {
	return NewAuthService(repo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "estate-keeper-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestRegisterManager_HashesPassword(t *testing.T) {
	var storedManager models.Manager
	repo := &mockManagerRepository{
		createFn: func(_ context.Context, manager models.Manager) (models.Manager, error) {
			storedManager = manager
			manager.ManagerID = "mgr-1"
			return manager, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterManager(context.Background(), models.Manager{
		Email: "victoria@sterling-estates.com",
		Name:  "Victoria Sterling",
	}, "microscopic-steaks")
	require.NoError(t, err)

	assert.Equal(t, "mgr-1", registered.ManagerID)
	assert.NotEqual(t, "microscopic-steaks", storedManager.PasswordHash)
	assert.NoError(t, utils.CheckPassword(storedManager.PasswordHash, "microscopic-steaks"))
}

func TestRegisterManager_EmptyFields(t *testing.T) {
	svc := newTestAuthService(&mockManagerRepository{})

	_, err := svc.RegisterManager(context.Background(), models.Manager{Email: "a@b.c"}, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterManager(context.Background(), models.Manager{Name: "No Email"}, "pw")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterManager_EmailTaken(t *testing.T) {
	repo := &mockManagerRepository{
		createFn: func(_ context.Context, _ models.Manager) (models.Manager, error) {
			return models.Manager{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterManager(context.Background(), models.Manager{
		Email: "victoria@sterling-estates.com",
		Name:  "Victoria Sterling",
	}, "pw")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := &mockManagerRepository{
		findByEmailFn: func(_ context.Context, email string) (models.Manager, error) {
			return models.Manager{ManagerID: "mgr-1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	manager, err := svc.Login(context.Background(), "victoria@sterling-estates.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "mgr-1", manager.ManagerID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := &mockManagerRepository{
		findByEmailFn: func(_ context.Context, email string) (models.Manager, error) {
			return models.Manager{ManagerID: "mgr-1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), "victoria@sterling-estates.com", "battery-staple")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownManager(t *testing.T) {
	repo := &mockManagerRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.Manager, error) {
			return models.Manager{}, store.ErrNoManagerWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "nobody@sterling-estates.com", "pw")
	assert.ErrorIs(t, err, store.ErrNoManagerWasFound)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockManagerRepository{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Manager{ManagerID: "mgr-42"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "mgr-42", parsed.ManagerID)
}

func TestParseToken_WrongKey(t *testing.T) {
	other, err := utils.GenerateJWTToken("estate-keeper-test", "mgr-42", time.Hour, "another-key")
	require.NoError(t, err)

	svc := newTestAuthService(&mockManagerRepository{})

	_, err = svc.ParseToken(context.Background(), other.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockManagerRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artemkv/storefront/internal/models"
	"github.com/artemkv/storefront/internal/repo"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return &AuthService{Repo: &repo.GormRepo{DB: db}, JWTSecret: []byte("test-secret")}
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "", "pw", "Name")
	require.ErrorIs(t, err, ErrValidation)
	_, _, err = svc.Register(ctx, "a@example.com", "", "Name")
	require.ErrorIs(t, err, ErrValidation)
	_, _, err = svc.Register(ctx, "a@example.com", "pw", "")
	require.ErrorIs(t, err, ErrValidation)
}

// The unique index on email is what rejects duplicates, so a second
// signup surfaces as a conflict even when both started before either row
// existed.
func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "a@example.com", "password123", "First")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "a@example.com", "password456", "Second")
	require.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, svc.Repo.DB.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	created, _, err := svc.Register(ctx, "a@example.com", "password123", "Test User")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "a@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "a@example.com", "wrong")
	require.ErrorIs(t, err, ErrBadLogin)
}

package users

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/storefront/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "users.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db)
}

func TestRepository_CreateUser(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	user := &entities.User{Name: "A", Email: "a@x.com", PasswordHash: "hash"}
	err := repo.CreateUser(ctx, user)

	require.NoError(t, err)
	assert.Len(t, user.ID, 36) // UUID assigned on create
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRepository_CreateUser_DuplicateEmail(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &entities.User{Name: "A", Email: "a@x.com", PasswordHash: "h"}))

	err := repo.CreateUser(ctx, &entities.User{Name: "B", Email: "a@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	count, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_GetUserByEmail(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	created := &entities.User{Name: "A", Email: "a@x.com", PasswordHash: "h"}
	require.NoError(t, repo.CreateUser(ctx, created))

	user, err := repo.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "A", user.Name)

	_, err = repo.GetUserByEmail(ctx, "A@X.COM")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_GetUserByID(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	created := &entities.User{Name: "A", Email: "a@x.com", PasswordHash: "h"}
	require.NoError(t, repo.CreateUser(ctx, created))

	user, err := repo.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = repo.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

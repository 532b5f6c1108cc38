package audit

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	auditRepo "github.com/mrlokans/storefront/internal/database/audit"
	"github.com/mrlokans/storefront/internal/entities"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "audit.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.AuditEvent{})
	require.NoError(t, err)

	repo := auditRepo.NewRepository(db)
	svc := NewService(repo, nil)

	return svc, db
}

func TestService_Log(t *testing.T) {
	svc, db := setupTestService(t)

	event := &entities.AuditEvent{
		Subject: "user-1",
		Action:  entities.AuditActionUserRegister,
		Status:  entities.AuditStatusSuccess,
	}

	err := svc.Log(event)
	require.NoError(t, err)

	var saved entities.AuditEvent
	err = db.First(&saved, event.ID).Error
	require.NoError(t, err)
	assert.Equal(t, entities.AuditActionUserRegister, saved.Action)
}

func TestService_LogAuth(t *testing.T) {
	svc, db := setupTestService(t)

	svc.LogAuth(&entities.AuditEvent{
		Subject:   "a@x.com",
		Action:    entities.AuditActionUserLogin,
		Channel:   "mobile",
		IPAddress: "10.0.0.1",
		UserAgent: strings.Repeat("x", 600),
	})
	svc.LogAuth(&entities.AuditEvent{
		Subject: "a@x.com",
		Action:  entities.AuditActionUserLogin,
		Status:  entities.AuditStatusFailed,
		Reason:  "invalid credentials",
	})
	svc.Wait()

	var events []entities.AuditEvent
	require.NoError(t, db.Order("id").Find(&events).Error)
	require.Len(t, events, 2)

	assert.Equal(t, entities.AuditStatusSuccess, events[0].Status)
	assert.Len(t, events[0].UserAgent, 500)
	assert.True(t, strings.HasSuffix(events[0].UserAgent, "..."))
	assert.Equal(t, entities.AuditStatusFailed, events[1].Status)
	assert.Equal(t, "invalid credentials", events[1].Reason)
}

func TestService_DeleteOldEvents(t *testing.T) {
	svc, _ := setupTestService(t)

	require.NoError(t, svc.Log(&entities.AuditEvent{
		Subject:   "old",
		Action:    entities.AuditActionSellerLogin,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}))
	require.NoError(t, svc.Log(&entities.AuditEvent{
		Subject: "new",
		Action:  entities.AuditActionSellerLogin,
	}))

	deleted, err := svc.DeleteOldEvents(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	events, total, err := svc.GetEvents("", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "new", events[0].Subject)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

package tasks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCleaner struct {
	mu        sync.Mutex
	retention time.Duration
	calls     int
	err       error
	done      chan struct{}
}

func (f *fakeCleaner) DeleteOldEvents(retention time.Duration) (int64, error) {
	f.mu.Lock()
	f.retention = retention
	f.calls++
	f.mu.Unlock()
	if f.done != nil {
		close(f.done)
	}
	return 3, f.err
}

func TestCleanupAuditEventsTaskConfig(t *testing.T) {
	cfg := CleanupAuditEventsTask{RetentionDays: 7}.Config()

	assert.Equal(t, "cleanup_audit_events", cfg.Name)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestCleanupAuditEventsProcessor(t *testing.T) {
	cleaner := &fakeCleaner{}
	process := CleanupAuditEventsProcessor(cleaner, nil)

	require.NoError(t, process(context.Background(), CleanupAuditEventsTask{RetentionDays: 7}))
	assert.Equal(t, 7*24*time.Hour, cleaner.retention)

	require.NoError(t, process(context.Background(), CleanupAuditEventsTask{}))
	assert.Equal(t, DefaultAuditRetentionDays*24*time.Hour, cleaner.retention)
	assert.Equal(t, 2, cleaner.calls)
}

func TestCleanupAuditEventsProcessor_Errors(t *testing.T) {
	err := CleanupAuditEventsProcessor(nil, nil)(context.Background(), CleanupAuditEventsTask{})
	assert.ErrorIs(t, err, errNoCleaner)

	boom := errors.New("locked")
	err = CleanupAuditEventsProcessor(&fakeCleaner{err: boom}, nil)(context.Background(), CleanupAuditEventsTask{})
	assert.ErrorIs(t, err, boom)
}

func TestEnqueueAuditCleanup(t *testing.T) {
	client := newTestClient(t)

	cleaner := &fakeCleaner{done: make(chan struct{})}
	client.Register(NewCleanupAuditEventsQueue(cleaner, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	require.NoError(t, client.EnqueueAuditCleanup(ctx, 14))

	select {
	case <-cleaner.done:
		cleaner.mu.Lock()
		assert.Equal(t, 14*24*time.Hour, cleaner.retention)
		cleaner.mu.Unlock()
	case <-time.After(5 * time.Second):
		t.Fatal("cleanup task was not executed within timeout")
	}
}

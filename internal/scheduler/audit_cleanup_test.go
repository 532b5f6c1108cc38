package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	mu   sync.Mutex
	days []int
	err  error
}

func (f *fakeEnqueuer) EnqueueAuditCleanup(_ context.Context, retentionDays int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.days = append(f.days, retentionDays)
	return f.err
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("0 3 * * *"))
	assert.NoError(t, ValidateSchedule("*/15 * * * *"))
	assert.Error(t, ValidateSchedule("not a schedule"))
	assert.Error(t, ValidateSchedule("0 0 3 * * *"), "seconds field is not accepted")
}

func TestAuditCleanupScheduler_StartStop(t *testing.T) {
	s := NewAuditCleanupScheduler(&fakeEnqueuer{}, "0 3 * * *", 30, nil)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	next := s.GetNextRunTime()
	require.NotNil(t, next)
	assert.Equal(t, 3, next.Hour())
	assert.Equal(t, 0, next.Minute())

	// Second start is a no-op.
	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())
}

func TestAuditCleanupScheduler_InvalidSchedule(t *testing.T) {
	s := NewAuditCleanupScheduler(&fakeEnqueuer{}, "bogus", 30, nil)

	assert.Error(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestAuditCleanupScheduler_RunNow(t *testing.T) {
	enqueuer := &fakeEnqueuer{}
	s := NewAuditCleanupScheduler(enqueuer, "0 3 * * *", 14, nil)

	s.RunNow()

	enqueuer.mu.Lock()
	defer enqueuer.mu.Unlock()
	assert.Equal(t, []int{14}, enqueuer.days)
}

func TestAuditCleanupScheduler_RunNowError(t *testing.T) {
	enqueuer := &fakeEnqueuer{err: errors.New("queue closed")}
	s := NewAuditCleanupScheduler(enqueuer, "0 3 * * *", 14, nil)

	assert.NotPanics(t, s.RunNow)
}

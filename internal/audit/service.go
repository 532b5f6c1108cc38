package audit

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mrlokans/storefront/internal/database/audit"
	"github.com/mrlokans/storefront/internal/entities"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo   *audit.Repository
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Log records an audit event synchronously.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.repo.LogEvent(event); err != nil {
			s.logger.Error("failed to log audit event", "action", event.Action, "error", err)
		}
	}()
}

// LogAuth records an authentication event without blocking the request.
func (s *Service) LogAuth(event *entities.AuditEvent) {
	event.UserAgent = truncate(event.UserAgent, 500)
	event.Reason = truncate(event.Reason, 200)
	if event.Status == "" {
		event.Status = entities.AuditStatusSuccess
	}
	s.LogAsync(event)
}

// Wait blocks until all background writes have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// GetEvents retrieves paginated audit events, optionally filtered by action.
func (s *Service) GetEvents(action entities.AuditAction, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(action, limit, offset)
}

// GetEventsForSubject retrieves the most recent events for one user id or email.
func (s *Service) GetEventsForSubject(subject string, limit int) ([]entities.AuditEvent, error) {
	return s.repo.GetEventsForSubject(subject, limit)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

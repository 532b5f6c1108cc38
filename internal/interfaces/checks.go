package interfaces

// This file contains compile-time interface implementation checks.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/storefront/internal/audit"
	"github.com/mrlokans/storefront/internal/auth"
	"github.com/mrlokans/storefront/internal/database"
	"github.com/mrlokans/storefront/internal/database/users"
	"github.com/mrlokans/storefront/internal/http"
	"github.com/mrlokans/storefront/internal/scheduler"
	"github.com/mrlokans/storefront/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ auth.UserRepository = (*users.Repository)(nil)

var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Audit
// =============================================================================

var _ auth.Auditor = (*audit.Service)(nil)
var _ http.AuditService = (*audit.Service)(nil)
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ scheduler.CleanupEnqueuer = (*tasks.Client)(nil)

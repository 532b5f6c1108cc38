// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - auth.UserRepository: account lookup and creation (internal/auth/service.go)
//   - http.AuditReader: paginated audit listing (internal/http/audit.go)
//   - http.Pinger: database liveness for /health (internal/http/health.go)
//
// ## Event Sinks
//
//   - auth.Auditor: non-blocking record of login, register and logout outcomes
//     (internal/auth/handlers.go)
//
// ## Background Work
//
//   - tasks.AuditEventCleaner: retention purge run by the task queue
//     (internal/tasks/cleanup_audit.go)
//   - scheduler.CleanupEnqueuer: hands cron ticks to the task queue
//     (internal/scheduler/audit_cleanup.go)
//
// # Adding a Protected Route Family
//
// Guards are parametrized by cookie name and claim check:
//
//	guard := middleware.Guard(auth.GuardConfig{
//	    CookieName: "adminToken",
//	    Validate: func(c *auth.Claims) error {
//	        if c.Email != adminEmail {
//	            return auth.ErrForbidden
//	        }
//	        return nil
//	    },
//	})
//	router.Group("/api/admin").GET("/stats", guard, handler)
//
// Returning auth.ErrForbidden yields 403; any other error yields 401 "Invalid token".
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces

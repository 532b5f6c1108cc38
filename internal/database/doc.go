// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup (SQLite or Postgres) and migrations
//	├── users/           # Customer accounts
//	└── audit/           # Authentication audit trail
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	usersRepo := users.NewRepository(db.DB)
//	auditRepo := audit.NewRepository(db.DB)
//
//	user, err := usersRepo.GetUserByEmail(ctx, "a@x.com")
//
// The seller account is configuration, not a row; nothing here models it.
package database

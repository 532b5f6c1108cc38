package config

import "time"

const (
	// DefaultDatabasePath is the default path for the account database
	DefaultDatabasePath = "./storefront.db"

	// DefaultTokenExpiry is how long issued tokens and session cookies live
	DefaultTokenExpiry = 7 * 24 * time.Hour

	// DefaultBcryptCost is the bcrypt cost factor for new account passwords
	DefaultBcryptCost = 10
)

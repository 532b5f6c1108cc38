package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

type DatabaseDriver string

const (
	DriverSQLite   DatabaseDriver = "sqlite"
	DriverPostgres DatabaseDriver = "postgres"
)

var (
	ErrJWTSecretRequired = errors.New("JWT_SECRET is required")
	ErrUnknownDriver     = errors.New("unknown database driver")
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		Audit
		Tasks
		Log
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		Environment              Environment
	}
	Database struct {
		Driver DatabaseDriver
		Path   string // SQLite file, also used to place the tasks database
		DSN    string // Postgres connection string
	}
	Auth struct {
		JWTSecret      string
		SellerEmail    string
		SellerPassword string
		TokenExpiry    time.Duration
		BcryptCost     int
		SecureCookies  bool // Secure + SameSite=None, derived from APP_ENV=production
	}
	Audit struct {
		Enabled         bool
		RetentionDays   int
		CleanupSchedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Log struct {
		Level  string
		Format string // "text" or "json"
	}
)

// IsProduction reports whether the service runs in production mode.
func (g Global) IsProduction() bool {
	return g.Environment == EnvProduction
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return ErrJWTSecretRequired
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Database.Driver)
	}
	return nil
}

func NewConfig() *Config {
	// Optional; real environment variables win over the file.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 4000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("app_env", string(EnvDevelopment))

	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")

	// Auth defaults
	v.SetDefault("jwt_secret", "")
	v.SetDefault("seller_email", "")
	v.SetDefault("seller_password", "")
	v.SetDefault("auth_token_expiry", DefaultTokenExpiry.String())
	v.SetDefault("auth_bcrypt_cost", DefaultBcryptCost)

	v.SetDefault("audit_enabled", true)
	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("audit_cleanup_schedule", "0 3 * * *")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	env := Environment(v.GetString("APP_ENV"))

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			Environment:              env,
		},
		Database: Database{
			Driver: DatabaseDriver(v.GetString("DATABASE_DRIVER")),
			Path:   v.GetString("DATABASE_PATH"),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		Auth: Auth{
			JWTSecret:      v.GetString("JWT_SECRET"),
			SellerEmail:    v.GetString("SELLER_EMAIL"),
			SellerPassword: v.GetString("SELLER_PASSWORD"),
			TokenExpiry:    v.GetDuration("AUTH_TOKEN_EXPIRY"),
			BcryptCost:     v.GetInt("AUTH_BCRYPT_COST"),
			SecureCookies:  env == EnvProduction,
		},
		Audit: Audit{
			Enabled:         v.GetBool("AUDIT_ENABLED"),
			RetentionDays:   v.GetInt("AUDIT_RETENTION_DAYS"),
			CleanupSchedule: v.GetString("AUDIT_CLEANUP_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}

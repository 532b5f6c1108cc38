package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/storefront/internal/audit"
	"github.com/mrlokans/storefront/internal/auth"
	"github.com/mrlokans/storefront/internal/config"
	"github.com/mrlokans/storefront/internal/database"
	auditrepo "github.com/mrlokans/storefront/internal/database/audit"
	"github.com/mrlokans/storefront/internal/database/users"
	http_controllers "github.com/mrlokans/storefront/internal/http"
	"github.com/mrlokans/storefront/internal/logging"
	"github.com/mrlokans/storefront/internal/scheduler"
	"github.com/mrlokans/storefront/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the wired components of a running server.
type App struct {
	Router    *gin.Engine
	DB        *database.Database
	Audit     *audit.Service
	Tasks     *tasks.Client
	Scheduler *scheduler.AuditCleanupScheduler

	logger *slog.Logger
}

// NewApp opens storage and wires services, background jobs and routes.
func NewApp(cfg *config.Config, version string, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	app := &App{DB: db, logger: logger}

	if cfg.Auth.SellerEmail == "" || cfg.Auth.SellerPassword == "" {
		logger.Warn("SELLER_EMAIL or SELLER_PASSWORD is not set, seller login is disabled")
	}

	authService := auth.NewService(users.NewRepository(db.DB), cfg.Auth)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	routerCfg := http_controllers.RouterConfig{
		AuthConfig:  cfg.Auth,
		AuthService: authService,
		Tokens:      tokens,
		DB:          db,
		Version:     version,
		Logger:      logger,
	}

	if cfg.Audit.Enabled {
		app.Audit = audit.NewService(auditrepo.NewRepository(db.DB), logger)
		routerCfg.AuditService = app.Audit
	}

	if cfg.Audit.Enabled && cfg.Tasks.Enabled {
		taskClient, err := tasks.NewClient(cfg.Database.Path, tasks.ConfigFromSettings(cfg.Tasks), logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize task queue: %w", err)
		}
		taskClient.Register(tasks.NewCleanupAuditEventsQueue(app.Audit, logger))
		app.Tasks = taskClient
		app.Scheduler = scheduler.NewAuditCleanupScheduler(taskClient, cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays, logger)
	}

	app.Router = http_controllers.NewRouter(routerCfg)
	return app, nil
}

// Start launches background workers. It does not block.
func (a *App) Start(ctx context.Context) error {
	if a.Tasks != nil {
		go a.Tasks.Start(ctx)
	}
	if a.Scheduler != nil {
		if err := a.Scheduler.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown stops background work and releases storage.
func (a *App) Shutdown(ctx context.Context) {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.Tasks != nil {
		a.Tasks.Stop(ctx)
		if err := a.Tasks.Close(); err != nil {
			a.logger.Error("failed to close task queue", "error", err)
		}
	}
	if a.Audit != nil {
		a.Audit.Wait()
	}
	if err := a.DB.Close(); err != nil {
		a.logger.Error("failed to close database", "error", err)
	}
}

func Serve(router *gin.Engine, cfg *config.Config, logger *slog.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr, "environment", cfg.Global.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if onShutdown != nil {
			onShutdown(context.Background())
		}
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info("shutting down server", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	// Stop background work after in-flight requests have drained.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	logger.Info("server exiting")
	return nil
}

func Run(cfg *config.Config, version string) error {
	logger := logging.New(cfg.Log)
	slog.SetDefault(logger)

	if cfg.Global.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting storefront", "version", version)

	app, err := NewApp(cfg, version, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.Start(ctx); err != nil {
		app.Shutdown(ctx)
		return err
	}

	return Serve(app.Router, cfg, logger, func(shutdownCtx context.Context) {
		cancel()
		app.Shutdown(shutdownCtx)
	})
}

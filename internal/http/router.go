package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/storefront/internal/auth"
	"github.com/mrlokans/storefront/internal/config"
)

// AuditService records auth events and serves them to the seller.
type AuditService interface {
	auth.Auditor
	AuditReader
}

type RouterConfig struct {
	AuthConfig  config.Auth
	AuthService *auth.Service
	Tokens      *auth.TokenIssuer
	// AuditService is optional; when nil no events are recorded and the
	// audit listing is not mounted.
	AuditService AuditService
	DB           Pinger
	Version      string
	Logger       *slog.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(auth.RecoveryHandler(logger)))
	router.Use(auth.SecurityHeadersMiddleware())
	if cfg.AuthConfig.SecureCookies {
		router.Use(auth.StrictTransportSecurityMiddleware())
	}

	healthController := NewHealthController(cfg.DB, cfg.Version)
	router.GET("/health", healthController.Status)

	var auditor auth.Auditor
	if cfg.AuditService != nil {
		auditor = cfg.AuditService
	}

	middleware := auth.NewMiddleware(cfg.Tokens, cfg.AuthConfig, logger)
	cookies := auth.NewCookiePolicy(cfg.AuthConfig.SecureCookies, cfg.Tokens.TTL())
	requireUser := middleware.RequireUser()
	requireSeller := middleware.RequireSeller()

	api := router.Group("/api")

	userController := auth.NewUserController(cfg.AuthService, cfg.Tokens, cookies, auditor, logger)
	userController.RegisterRoutes(api.Group("/user"), requireUser)

	sellerGroup := api.Group("/seller")
	sellerController := auth.NewSellerController(cfg.AuthService, cfg.Tokens, cookies, auditor, logger)
	sellerController.RegisterRoutes(sellerGroup, requireSeller)

	if cfg.AuditService != nil {
		auditController := NewAuditController(cfg.AuditService, logger)
		sellerGroup.GET("/audit", requireSeller, auditController.GetAuditEvents)
	}

	return router
}

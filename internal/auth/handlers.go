package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/storefront/internal/entities"
)

// Auditor records authentication outcomes. Implementations must not block.
type Auditor interface {
	LogAuth(event *entities.AuditEvent)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// bindJSON decodes the request body. An empty body is treated as an empty
// object so that it fails field validation like an empty form would.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, MsgInvalidBody)
		return false
	}
	return true
}

func recordAuth(auditor Auditor, c *gin.Context, action entities.AuditAction, subject string, err error) {
	if auditor == nil {
		return
	}
	event := &entities.AuditEvent{
		Subject:   subject,
		Action:    action,
		Channel:   string(DetectChannel(c.Request)),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Status:    entities.AuditStatusSuccess,
	}
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.Reason = err.Error()
	}
	auditor.LogAuth(event)
}

// UserController handles customer authentication endpoints.
type UserController struct {
	service   *Service
	tokens    *TokenIssuer
	responder *SessionResponder
	auditor   Auditor
	logger    *slog.Logger
}

// NewUserController creates a controller for /api/user. auditor may be nil.
func NewUserController(service *Service, tokens *TokenIssuer, cookies CookiePolicy, auditor Auditor, logger *slog.Logger) *UserController {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserController{
		service:   service,
		tokens:    tokens,
		responder: NewSessionResponder(cookies, UserCookieName),
		auditor:   auditor,
		logger:    logger,
	}
}

// RegisterRoutes mounts the customer endpoints. guard protects is-auth.
func (uc *UserController) RegisterRoutes(group *gin.RouterGroup, guard gin.HandlerFunc) {
	group.POST("/register", uc.Register)
	group.POST("/login", uc.Login)
	group.GET("/is-auth", guard, uc.IsAuth)
	group.POST("/logout", uc.Logout)
}

// Register creates an account and signs the caller in.
func (uc *UserController) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		recordAuth(uc.auditor, c, entities.AuditActionUserRegister, req.Email, err)
		switch {
		case errors.Is(err, ErrMissingFields):
			respondError(c, http.StatusBadRequest, MsgMissingFields)
		case errors.Is(err, ErrUserExists):
			respondError(c, http.StatusBadRequest, MsgUserExists)
		case errors.Is(err, ErrPasswordTooLong):
			respondError(c, http.StatusBadRequest, MsgPasswordTooLong)
		default:
			respondInternalError(c, uc.logger, err, "register")
		}
		return
	}

	token, err := uc.tokens.IssueForUser(user.ID)
	if err != nil {
		respondInternalError(c, uc.logger, err, "register")
		return
	}

	recordAuth(uc.auditor, c, entities.AuditActionUserRegister, user.ID, nil)
	uc.logger.InfoContext(c.Request.Context(), "user registered",
		"user_id", user.ID,
		"channel", DetectChannel(c.Request),
	)

	uc.responder.Grant(c, Grant{
		Status:      http.StatusCreated,
		Message:     "User registered successfully",
		Token:       token,
		User:        user.Summary(),
		TokenInBody: true,
	})
}

// Login verifies credentials and issues a customer token.
func (uc *UserController) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		recordAuth(uc.auditor, c, entities.AuditActionUserLogin, req.Email, err)
		switch {
		case errors.Is(err, ErrMissingFields):
			respondError(c, http.StatusBadRequest, MsgMissingFields)
		case errors.Is(err, ErrUserNotFound):
			respondError(c, http.StatusBadRequest, MsgUserDoesNotExist)
		case errors.Is(err, ErrInvalidCredentials):
			respondError(c, http.StatusBadRequest, MsgInvalidCredentials)
		default:
			respondInternalError(c, uc.logger, err, "login")
		}
		return
	}

	token, err := uc.tokens.IssueForUser(user.ID)
	if err != nil {
		respondInternalError(c, uc.logger, err, "login")
		return
	}

	recordAuth(uc.auditor, c, entities.AuditActionUserLogin, user.ID, nil)

	uc.responder.Grant(c, Grant{
		Message: "Logged in successfully",
		Token:   token,
		User:    user.Summary(),
	})
}

// IsAuth returns the profile of the authenticated customer.
func (uc *UserController) IsAuth(c *gin.Context) {
	user, err := uc.service.GetUserByID(c.Request.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			respondError(c, http.StatusNotFound, MsgUserNotFound)
			return
		}
		respondInternalError(c, uc.logger, err, "is-auth")
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, User: user})
}

// Logout clears the customer cookie. The token itself stays valid until expiry.
func (uc *UserController) Logout(c *gin.Context) {
	recordAuth(uc.auditor, c, entities.AuditActionUserLogout, "", nil)
	uc.responder.Logout(c, "Logged out successfully")
}

// SellerController handles endpoints for the single configured seller.
type SellerController struct {
	service   *Service
	tokens    *TokenIssuer
	responder *SessionResponder
	auditor   Auditor
	logger    *slog.Logger
}

// NewSellerController creates a controller for /api/seller. auditor may be nil.
func NewSellerController(service *Service, tokens *TokenIssuer, cookies CookiePolicy, auditor Auditor, logger *slog.Logger) *SellerController {
	if logger == nil {
		logger = slog.Default()
	}
	return &SellerController{
		service:   service,
		tokens:    tokens,
		responder: NewSessionResponder(cookies, SellerCookieName),
		auditor:   auditor,
		logger:    logger,
	}
}

// RegisterRoutes mounts the seller endpoints. guard protects is-auth.
func (sc *SellerController) RegisterRoutes(group *gin.RouterGroup, guard gin.HandlerFunc) {
	group.POST("/login", sc.Login)
	group.GET("/is-auth", guard, sc.IsAuth)
	group.POST("/logout", sc.Logout)
}

// Login compares the submitted pair with the configured seller credentials.
func (sc *SellerController) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := sc.service.AuthenticateSeller(req.Email, req.Password); err != nil {
		recordAuth(sc.auditor, c, entities.AuditActionSellerLogin, req.Email, err)
		if !sc.service.SellerConfigured() {
			sc.logger.WarnContext(c.Request.Context(), "seller login attempted but seller credentials are not configured")
		}
		respondError(c, http.StatusBadRequest, MsgInvalidCredentials)
		return
	}

	token, err := sc.tokens.IssueForSeller(req.Email)
	if err != nil {
		respondInternalError(c, sc.logger, err, "seller login")
		return
	}

	recordAuth(sc.auditor, c, entities.AuditActionSellerLogin, req.Email, nil)

	sc.responder.Grant(c, Grant{
		Message: "Login successful",
		Token:   token,
	})
}

// IsAuth confirms the seller session. The guard has already done the work.
func (sc *SellerController) IsAuth(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true})
}

// Logout clears the seller cookie.
func (sc *SellerController) Logout(c *gin.Context) {
	recordAuth(sc.auditor, c, entities.AuditActionSellerLogout, "", nil)
	sc.responder.Logout(c, "Logged out successfully")
}

package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/storefront/internal/config"
)

// Context keys for identity data
const (
	ContextKeyUserID      = "auth_user_id"
	ContextKeySellerEmail = "auth_seller_email"
	ContextKeyChannel     = "auth_channel"
)

// Cookie names per role.
const (
	UserCookieName   = "token"
	SellerCookieName = "sellerToken"
)

// ClaimValidator decides whether verified claims may access a route.
// Return ErrForbidden for a valid token with the wrong identity; any other
// error is treated as an invalid token.
type ClaimValidator func(claims *Claims) error

// GuardConfig parametrizes a guard for one role.
type GuardConfig struct {
	CookieName string
	Validate   ClaimValidator
}

// Middleware builds auth guards for protected routes.
type Middleware struct {
	tokens *TokenIssuer
	config config.Auth
	logger *slog.Logger
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(tokens *TokenIssuer, cfg config.Auth, logger *slog.Logger) *Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &Middleware{
		tokens: tokens,
		config: cfg,
		logger: logger,
	}
}

// RequireUser protects customer routes: token cookie or bearer with an id claim.
func (m *Middleware) RequireUser() gin.HandlerFunc {
	return m.Guard(GuardConfig{
		CookieName: UserCookieName,
		Validate: func(claims *Claims) error {
			if claims.ID == "" {
				return ErrInvalidToken
			}
			return nil
		},
	})
}

// RequireSeller protects seller routes: the email claim must be the seller's.
func (m *Middleware) RequireSeller() gin.HandlerFunc {
	sellerEmail := m.config.SellerEmail
	return m.Guard(GuardConfig{
		CookieName: SellerCookieName,
		Validate: func(claims *Claims) error {
			if sellerEmail == "" || claims.Email != sellerEmail {
				return ErrForbidden
			}
			return nil
		},
	})
}

// Guard returns a handler that reads the token from the request's channel,
// verifies it and stores the identity on the context.
func (m *Middleware) Guard(gc GuardConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		channel := DetectChannel(c.Request)

		raw, present := extractToken(c, channel, gc.CookieName)
		if !present {
			abortWithError(c, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		claims, err := m.tokens.Parse(raw)
		if err != nil {
			m.logger.DebugContext(c.Request.Context(), "token rejected",
				"path", c.Request.URL.Path,
				"channel", channel,
				"error", err,
			)
			abortWithError(c, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		if gc.Validate != nil {
			if err := gc.Validate(claims); err != nil {
				if errors.Is(err, ErrForbidden) {
					abortWithError(c, http.StatusForbidden, MsgForbidden)
					return
				}
				abortWithError(c, http.StatusUnauthorized, MsgInvalidToken)
				return
			}
		}

		setIdentity(c, claims, channel)
		c.Next()
	}
}

// extractToken returns the raw token and whether the carrier (header or
// cookie) was present at all. A present header without a second segment
// yields an empty token, which fails verification.
func extractToken(c *gin.Context, channel Channel, cookieName string) (string, bool) {
	if channel == ChannelMobile {
		header := c.GetHeader("Authorization")
		if header == "" {
			return "", false
		}
		return bearerToken(header), true
	}

	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie == "" {
		return "", false
	}
	return cookie, true
}

// bearerToken takes the second whitespace-separated segment of an
// Authorization header.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func setIdentity(c *gin.Context, claims *Claims, channel Channel) {
	if claims.ID != "" {
		c.Set(ContextKeyUserID, claims.ID)
	}
	if claims.Email != "" {
		c.Set(ContextKeySellerEmail, claims.Email)
	}
	c.Set(ContextKeyChannel, channel)
}

// Helper functions to extract auth data from Gin context

// GetUserID retrieves the authenticated customer id, or "" if absent.
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

// GetSellerEmail retrieves the authenticated seller email, or "" if absent.
func GetSellerEmail(c *gin.Context) string {
	return c.GetString(ContextKeySellerEmail)
}

// GetChannel returns the channel recorded by the guard, falling back to
// detecting it from the request.
func GetChannel(c *gin.Context) Channel {
	if v, exists := c.Get(ContextKeyChannel); exists {
		if ch, ok := v.(Channel); ok {
			return ch
		}
	}
	return DetectChannel(c.Request)
}

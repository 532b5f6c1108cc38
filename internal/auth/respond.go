package auth

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope for every auth endpoint.
type Response struct {
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
	User    any    `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

// respondError sends {"message": msg, "success": false}.
func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Message: msg, Success: false})
}

// abortWithError stops the handler chain with an error envelope.
func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Response{Message: msg, Success: false})
}

// respondInternalError logs the error and sends a 500 without details.
func respondInternalError(c *gin.Context, logger *slog.Logger, err error, op string) {
	logger.ErrorContext(c.Request.Context(), "internal error",
		"op", op,
		"path", c.Request.URL.Path,
		"error", err,
	)
	respondError(c, http.StatusInternalServerError, MsgInternalError)
}

// RecoveryHandler turns panics into the standard 500 envelope.
// Use with gin.CustomRecovery.
func RecoveryHandler(logger *slog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		abortWithError(c, http.StatusInternalServerError, MsgInternalError)
	}
}

package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 25
	maxPageLimit     = 100
)

// ErrorResponse is the error envelope for non-auth API endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// PaginatedResponse wraps paginated data with metadata.
type PaginatedResponse struct {
	Data       any   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// parsePagination reads page and limit query params, clamping invalid values.
func parsePagination(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return page, limit, (page - 1) * limit
}

func totalPages(total int64, limit int) int {
	pages := (int(total) + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}

// respondInternalError logs the error and sends a 500 without details.
func respondInternalError(c *gin.Context, logger *slog.Logger, err error, op string) {
	logger.ErrorContext(c.Request.Context(), "internal error", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
}

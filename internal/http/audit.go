package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/storefront/internal/entities"
)

// AuditReader lists recorded auth events.
type AuditReader interface {
	GetEvents(action entities.AuditAction, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetEventsForSubject(subject string, limit int) ([]entities.AuditEvent, error)
}

type AuditController struct {
	auditService AuditReader
	logger       *slog.Logger
}

func NewAuditController(auditService AuditReader, logger *slog.Logger) *AuditController {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditController{
		auditService: auditService,
		logger:       logger,
	}
}

// GetAuditEvents returns paginated auth events, newest first.
// GET /api/seller/audit?page=&limit=&action=
//
// With ?subject= the latest events for one account are returned instead.
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	page, limit, offset := parsePagination(c)

	if subject := c.Query("subject"); subject != "" {
		events, err := ac.auditService.GetEventsForSubject(subject, limit)
		if err != nil {
			respondInternalError(c, ac.logger, err, "list subject audit events")
			return
		}
		c.JSON(http.StatusOK, PaginatedResponse{
			Data:       events,
			Total:      int64(len(events)),
			Page:       1,
			Limit:      limit,
			TotalPages: 1,
		})
		return
	}
	action := entities.AuditAction(c.Query("action"))

	events, total, err := ac.auditService.GetEvents(action, limit, offset)
	if err != nil {
		respondInternalError(c, ac.logger, err, "list audit events")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:       events,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	})
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the salon's audit trail, newest first, paginated.
func (h *AuditLogsHandler) List(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}

	query := h.db.Model(&models.AuditLog{}).Where("salon_id = ?", salonID)

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		query = query.Where("entity = ?", entity)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to count audit logs")
		return
	}

	var logs []models.AuditLog
	if err := query.Order("id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list audit logs")
		return
	}

	c.JSON(200, gin.H{
		"data":     logs,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

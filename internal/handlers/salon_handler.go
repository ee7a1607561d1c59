package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/httpresp"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

type UpdateSalonRequest struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Timezone          string `json:"timezone"`
	MinAdvanceMinutes *int   `json:"min_advance_minutes"`
}

func (h *SalonHandler) Get(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	httpresp.OK(c, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		salon.Name = name
	}
	if req.Phone != "" {
		salon.Phone = req.Phone
	}
	if req.Address != "" {
		salon.Address = req.Address
	}
	if req.Timezone != "" {
		if !timezone.IsValid(req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown IANA timezone.")
			return
		}
		salon.Timezone = req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_request", "min_advance_minutes must be >= 0")
			return
		}
		salon.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update salon")
		return
	}

	httpresp.OK(c, salon)
}

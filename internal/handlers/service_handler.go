package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/httpresp"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	query := h.db.Where("salon_id = ?", salonID)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("active") == "true" {
		query = query.Where("active = ?", true)
	}

	var services []models.Service
	if err := query.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list services")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service := models.Service{
		SalonID:     salonID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    req.Category,
		Active:      true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create service")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid service id")
		return
	}

	var service models.Service
	if err := h.db.Where("id = ? AND salon_id = ?", id, salonID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.DurationMin = req.DurationMin
	service.Price = req.Price
	service.Category = req.Category
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update service")
		return
	}

	httpresp.OK(c, service)
}

// Delete deactivates instead of removing: past bookings keep pointing at
// the service row.
func (h *ServiceHandler) Delete(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid service id")
		return
	}

	result := h.db.Model(&models.Service{}).
		Where("id = ? AND salon_id = ?", id, salonID).
		Update("active", false)

	if result.Error != nil {
		httperr.Internal(c, "internal_error", "failed to deactivate service")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")
		return
	}

	httpresp.OK(c, gin.H{"deactivated": true})
}

package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/httpresp"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

type ProfessionalRequest struct {
	Name   string `json:"name" binding:"required"`
	Title  string `json:"title"`
	Active *bool  `json:"active"`
}

type WorkingHoursEntry struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Active     bool   `json:"active"`
}

// --------- Professionals ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	query := h.db.Where("salon_id = ?", salonID)
	if c.Query("active") == "true" {
		query = query.Where("active = ?", true)
	}

	var professionals []models.Professional
	if err := query.Order("id ASC").Find(&professionals).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list professionals")
		return
	}

	httpresp.List(c, professionals)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	professional := models.Professional{
		SalonID: salonID,
		Name:    req.Name,
		Title:   req.Title,
		Active:  true,
	}
	if req.Active != nil {
		professional.Active = *req.Active
	}

	if err := h.db.Create(&professional).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create professional")
		return
	}

	httpresp.Created(c, professional)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid professional id")
		return
	}

	var professional models.Professional
	if err := h.db.Where("id = ? AND salon_id = ?", id, salonID).
		First(&professional).Error; err != nil {
		httperr.NotFound(c, httperr.CodeProfessionalNotFound, "Professional not found.")
		return
	}

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	professional.Name = req.Name
	professional.Title = req.Title
	if req.Active != nil {
		professional.Active = *req.Active
	}

	if err := h.db.Save(&professional).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update professional")
		return
	}

	httpresp.OK(c, professional)
}

// --------- Working hours ---------

func (h *ProfessionalHandler) GetWorkingHours(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	id, ok := h.ownedProfessionalID(c, salonID)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.Where("professional_id = ?", id).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to load working hours")
		return
	}

	httpresp.List(c, hours)
}

// UpdateWorkingHours replaces the professional's whole weekly grid in one
// transaction, so a half-applied grid never leaks into availability checks.
func (h *ProfessionalHandler) UpdateWorkingHours(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	id, ok := h.ownedProfessionalID(c, salonID)
	if !ok {
		return
	}

	var entries []WorkingHoursEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	for _, e := range entries {
		if !e.Active {
			continue
		}
		if !validHM(e.StartTime) || !validHM(e.EndTime) || e.StartTime >= e.EndTime {
			httperr.BadRequest(c, "invalid_request", "start_time must be HH:MM and before end_time")
			return
		}
		hasBreak := e.BreakStart != "" || e.BreakEnd != ""
		if hasBreak {
			if !validHM(e.BreakStart) || !validHM(e.BreakEnd) || e.BreakStart >= e.BreakEnd {
				httperr.BadRequest(c, "invalid_request", "break window must be HH:MM and non-empty")
				return
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("professional_id = ?", id).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for _, e := range entries {
			wh := models.WorkingHours{
				ProfessionalID: id,
				Weekday:        e.Weekday,
				StartTime:      e.StartTime,
				EndTime:        e.EndTime,
				BreakStart:     e.BreakStart,
				BreakEnd:       e.BreakEnd,
				Active:         e.Active,
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to update working hours")
		return
	}

	h.GetWorkingHours(c)
}

// --------- Helpers ---------

func (h *ProfessionalHandler) ownedProfessionalID(c *gin.Context, salonID uint) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid professional id")
		return 0, false
	}

	var count int64
	h.db.Model(&models.Professional{}).
		Where("id = ? AND salon_id = ?", id, salonID).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, httperr.CodeProfessionalNotFound, "Professional not found.")
		return 0, false
	}

	return uint(id), true
}

func validHM(hm string) bool {
	if len(hm) != len(domain.TimeFormat) {
		return false
	}
	_, err := time.Parse(domain.TimeFormat, hm)
	return err == nil
}

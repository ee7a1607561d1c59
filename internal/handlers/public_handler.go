package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/httpresp"
	"github.com/salonworks/salon-scheduler/internal/models"
	ucbooking "github.com/salonworks/salon-scheduler/internal/usecase/booking"
)

// PublicHandler serves the unauthenticated booking page: salon profile,
// service catalog, free slots and the booking itself, all looked up by
// slug.
type PublicHandler struct {
	repo      domain.Repository
	create    *ucbooking.CreateBooking
	freeSlots *ucbooking.FreeSlots
}

func NewPublicHandler(
	repo domain.Repository,
	create *ucbooking.CreateBooking,
	freeSlots *ucbooking.FreeSlots,
) *PublicHandler {
	return &PublicHandler{
		repo:      repo,
		create:    create,
		freeSlots: freeSlots,
	}
}

type PublicBookingRequest struct {
	ProfessionalID uint   `json:"professional_id"` // 0 = any
	ServiceID      uint   `json:"service_id" binding:"required"`
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerPhone  string `json:"customer_phone" binding:"required"`
	CustomerEmail  string `json:"customer_email"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	salon, err := h.repo.GetSalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return nil, false
	}
	return salon, true
}

func (h *PublicHandler) GetSalon(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	httpresp.OK(c, gin.H{
		"name":     salon.Name,
		"slug":     salon.Slug,
		"phone":    salon.Phone,
		"address":  salon.Address,
		"timezone": salon.Timezone,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	services, err := h.repo.ListActiveServices(c.Request.Context(), salon.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list services")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	professionals, err := h.repo.ListActiveProfessionals(c.Request.Context(), salon.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list professionals")
		return
	}

	httpresp.List(c, professionals)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	professionalID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "professional_id is required")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "service_id is required")
		return
	}

	date, err := parseDateInSalon(salon, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "date must be YYYY-MM-DD")
		return
	}

	slots, err := h.freeSlots.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:        salon.ID,
		ProfessionalID: uint(professionalID),
		ServiceID:      uint(serviceID),
		Date:           date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// CreateBooking is the customer-facing booking endpoint. The minimum
// advance window applies here, unlike the staff endpoint.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		SalonID:        salon.ID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerEmail:  req.CustomerEmail,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"reference":  b.Reference,
		"start_time": b.StartTime,
		"end_time":   b.EndTime,
		"status":     b.Status,
	})
}

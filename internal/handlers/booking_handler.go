package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/httpresp"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/timezone"
	ucbooking "github.com/salonworks/salon-scheduler/internal/usecase/booking"
)

type BookingHandler struct {
	repo      domain.Repository
	create    *ucbooking.CreateBooking
	cancel    *ucbooking.CancelBooking
	complete  *ucbooking.CompleteBooking
	byDate    *ucbooking.ListBookingsByDate
	byMonth   *ucbooking.ListBookingsByMonth
	freeSlots *ucbooking.FreeSlots
	schedule  *ucbooking.DailySchedule
}

func NewBookingHandler(
	repo domain.Repository,
	create *ucbooking.CreateBooking,
	cancel *ucbooking.CancelBooking,
	complete *ucbooking.CompleteBooking,
	byDate *ucbooking.ListBookingsByDate,
	byMonth *ucbooking.ListBookingsByMonth,
	freeSlots *ucbooking.FreeSlots,
	schedule *ucbooking.DailySchedule,
) *BookingHandler {
	return &BookingHandler{
		repo:      repo,
		create:    create,
		cancel:    cancel,
		complete:  complete,
		byDate:    byDate,
		byMonth:   byMonth,
		freeSlots: freeSlots,
		schedule:  schedule,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	ProfessionalID uint   `json:"professional_id"` // 0 = any
	ServiceID      uint   `json:"service_id" binding:"required"`
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerPhone  string `json:"customer_phone" binding:"required"`
	CustomerEmail  string `json:"customer_email"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

// --------- Handlers ---------

// Create books a slot on behalf of a customer. Staff bookings skip the
// minimum advance window: the receptionist is allowed to squeeze a walk-in
// into the next free slot.
func (h *BookingHandler) Create(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		SalonID:          salonID,
		ProfessionalID:   req.ProfessionalID,
		ServiceID:        req.ServiceID,
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		CustomerEmail:    req.CustomerEmail,
		Date:             req.Date,
		Time:             req.Time,
		Notes:            req.Notes,
		SkipAdvanceCheck: true,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ListByDate returns the bookings of one professional for one day.
func (h *BookingHandler) ListByDate(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	professionalID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "professional_id is required")
		return
	}

	salon, err := h.repo.GetSalonByID(c.Request.Context(), salonID)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to load salon")
		return
	}

	date, err := parseDateInSalon(salon, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "date must be YYYY-MM-DD")
		return
	}

	bookings, err := h.byDate.Execute(
		c.Request.Context(),
		salonID,
		uint(professionalID),
		date,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ListByMonth returns the bookings of one professional for a whole month,
// for the calendar view.
func (h *BookingHandler) ListByMonth(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	professionalID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "professional_id is required")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "year is required")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_request", "month must be 1-12")
		return
	}

	bookings, err := h.byMonth.Execute(
		c.Request.Context(),
		salonID,
		uint(professionalID),
		year,
		month,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)
	userID := c.GetUint(middleware.ContextUserID)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid booking id")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), salonID, userID, uint(bookingID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)
	userID := c.GetUint(middleware.ContextUserID)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid booking id")
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), salonID, userID, uint(bookingID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// Availability enumerates the free slots of one professional for one day
// and one service.
func (h *BookingHandler) Availability(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

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

	salon, err := h.repo.GetSalonByID(c.Request.Context(), salonID)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to load salon")
		return
	}

	date, err := parseDateInSalon(salon, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "date must be YYYY-MM-DD")
		return
	}

	slots, err := h.freeSlots.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:        salonID,
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

// Schedule returns the salon-wide busy report for one day.
func (h *BookingHandler) Schedule(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	salon, err := h.repo.GetSalonByID(c.Request.Context(), salonID)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to load salon")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = timezone.NowIn(salon.Timezone).Format(domain.DateFormat)
	}

	date, err := parseDateInSalon(salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "date must be YYYY-MM-DD")
		return
	}

	report, err := h.schedule.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, report)
}

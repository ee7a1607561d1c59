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

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

func (h *CustomerHandler) List(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	query := h.db.Where("salon_id = ?", salonID)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR phone LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := query.Order("name ASC").Limit(200).Find(&customers).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list customers")
		return
	}

	httpresp.List(c, customers)
}

// Get returns one customer with their booking history, newest first.
func (h *CustomerHandler) Get(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid customer id")
		return
	}

	var customer models.Customer
	if err := h.db.Where("id = ? AND salon_id = ?", id, salonID).
		First(&customer).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	var bookings []models.Booking
	h.db.Where("customer_id = ?", customer.ID).
		Preload("Service").
		Preload("Professional").
		Order("start_time DESC").
		Limit(50).
		Find(&bookings)

	httpresp.OK(c, gin.H{
		"customer": customer,
		"bookings": bookings,
	})
}

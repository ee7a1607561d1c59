package booking

import (
	"context"
	"time"

	"github.com/salonworks/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// ListActiveServices returns active services ordered by ascending id.
	ListActiveServices(
		ctx context.Context,
		salonID uint,
	) ([]models.Service, error)

	// -------- Professional --------
	GetProfessional(
		ctx context.Context,
		salonID uint,
		professionalID uint,
	) (*models.Professional, error)

	// ListActiveProfessionals returns active professionals ordered by
	// ascending id; the selector depends on this order.
	ListActiveProfessionals(
		ctx context.Context,
		salonID uint,
	) ([]models.Professional, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Booking (create / conflict) --------

	// CreateBookingIfFree re-checks the professional's slot and inserts the
	// booking as one transaction. Returns the time_conflict business error
	// when the interval is already taken.
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForSalon(
		ctx context.Context,
		bookingID uint,
		salonID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.WorkingHours, error)

	IsWithinWorkingHours(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	// ListBookingsForDay returns slot-blocking bookings for one
	// professional with start_time in [start, end), ordered by start_time.
	ListBookingsForDay(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// ListSalonBookingsForDay is the salon-wide variant used by the daily
	// schedule aggregator; professionals are preloaded.
	ListSalonBookingsForDay(
		ctx context.Context,
		salonID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}

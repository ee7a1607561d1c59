package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ? AND active = true", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) ListActiveServices(
	ctx context.Context,
	salonID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *BookingGormRepository) GetProfessional(
	ctx context.Context,
	salonID uint,
	professionalID uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", professionalID, salonID).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *BookingGormRepository) ListActiveProfessionals(
	ctx context.Context,
	salonID uint,
) ([]models.Professional, error) {

	var pros []models.Professional
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Order("id ASC").
		Find(&pros).Error; err != nil {
		return nil, err
	}
	return pros, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// lockedConflictQuery selects the bookings overlapping b's interval for its
// professional. It must stay a row select, not an aggregate: postgres rejects
// FOR UPDATE combined with aggregate functions (SQLSTATE 0A000).
func lockedConflictQuery(tx *gorm.DB, b *models.Booking) *gorm.DB {
	return tx.
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where(
			"professional_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			b.ProfessionalID,
			string(domain.StatusCancelled),
			b.EndTime,
			b.StartTime,
		)
}

// CreateBookingIfFree runs the conflict re-check and the insert in one
// transaction. The FOR UPDATE scan makes a second transaction for the same
// professional wait on the overlapping rows, so at most one of two racing
// inserts for the same interval can commit.
func (r *BookingGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicting []models.Booking
		if err := lockedConflictQuery(tx, b).
			Limit(1).
			Find(&conflicting).Error; err != nil {
			return err
		}

		if len(conflicting) > 0 {
			return httperr.ErrBusiness(httperr.CodeTimeConflict)
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForSalon(
	ctx context.Context,
	bookingID uint,
	salonID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", bookingID, salonID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetWorkingHours(
	ctx context.Context,
	professionalID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}

	return &wh, nil
}

func (r *BookingGormRepository) IsWithinWorkingHours(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	weekday := int(start.Weekday())
	loc := start.Location()

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		First(&wh).Error; err != nil {
		return false, nil
	}

	if !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return false, nil
	}

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse(domain.TimeFormat, hm)
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	workStart := parseHM(wh.StartTime)
	workEnd := parseHM(wh.EndTime)

	if start.Before(workStart) || end.After(workEnd) {
		return false, nil
	}

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		breakStart := parseHM(wh.BreakStart)
		breakEnd := parseHM(wh.BreakEnd)
		if start.Before(breakEnd) && end.After(breakStart) {
			return false, nil
		}
	}

	return true, nil
}

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time", "duration_min", "status").
		Where(
			"professional_id = ? AND status <> ? AND start_time >= ? AND start_time < ?",
			professionalID, string(domain.StatusCancelled), start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListSalonBookingsForDay(
	ctx context.Context,
	salonID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Professional").
		Where(
			"salon_id = ? AND status <> ? AND start_time >= ? AND start_time < ?",
			salonID, string(domain.StatusCancelled), start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where(
			"professional_id = ? AND start_time >= ? AND start_time < ?",
			professionalID, start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/audit"
	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/lock"
	"github.com/salonworks/salon-scheduler/internal/logger"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SalonID uint

	// 0 means "any professional": the selector picks the first active one
	// that fits, in ascending id order.
	ProfessionalID uint

	ServiceID uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Date  string // YYYY-MM-DD, salon-local
	Time  string // HH:MM, salon-local
	Notes string

	// Staff-initiated bookings skip the minimum advance window.
	SkipAdvanceCheck bool
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the only path that inserts bookings. It guards the
// invariant that a professional never holds two overlapping non-cancelled
// bookings: a per-professional lock is held across the availability
// re-check and the insert, and the repository re-checks again inside the
// database transaction.
type CreateBooking struct {
	repo     domain.Repository
	locker   lock.Locker
	selector *SelectProfessional
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		locker:   locker,
		selector: NewSelectProfessional(repo),
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Salon + salon-local start instant
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, storageErr(err)
	}

	start, err := time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		in.Date+" "+in.Time,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !in.SkipAdvanceCheck {
		minAdvance := salon.MinAdvanceMinutes
		if minAdvance <= 0 {
			minAdvance = 120
		}
		now := timezone.NowIn(salon.Timezone)
		if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	// --------------------------------------------------
	// Service -> duration (single default policy)
	// --------------------------------------------------
	service, err := uc.resolveService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	interval := domain.NewInterval(start, service.DurationMin)

	// --------------------------------------------------
	// Professional: given, or first-fit selection
	// --------------------------------------------------
	pro, err := uc.resolveProfessional(ctx, salon, in.ProfessionalID, interval)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Working hours
	// --------------------------------------------------
	onShift, err := uc.repo.IsWithinWorkingHours(ctx, pro.ID, interval.Start, interval.End())
	if err != nil {
		return nil, storageErr(err)
	}
	if !onShift {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideWorkingHours)
	}

	// --------------------------------------------------
	// Customer (get or create)
	// --------------------------------------------------
	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.SalonID,
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerEmail,
	)
	if err != nil {
		return nil, storageErr(err)
	}

	// --------------------------------------------------
	// Atomic check + insert under the professional lock
	// --------------------------------------------------
	release, err := uc.locker.Acquire(ctx, lock.ProfessionalKey(in.SalonID, pro.ID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", httperr.ErrBusiness(httperr.CodeStorageUnavailable), err)
	}
	defer release()

	b := &models.Booking{
		Reference:      uuid.NewString(),
		SalonID:        in.SalonID,
		ProfessionalID: pro.ID,
		ServiceID:      service.ID,
		CustomerID:     customer.ID,
		StartTime:      interval.Start,
		DurationMin:    interval.DurationMin,
		EndTime:        interval.End(),
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	// Bound the locked section so it cannot outlive the lock's TTL.
	txCtx, cancel := context.WithTimeout(ctx, lock.HoldTimeout)
	defer cancel()

	if err := uc.repo.CreateBookingIfFree(txCtx, b); err != nil {
		if httperr.IsBusiness(err, httperr.CodeTimeConflict) {
			logger.L().Info("booking conflict",
				zap.Uint("salon_id", in.SalonID),
				zap.Uint("professional_id", pro.ID),
				zap.Time("start", interval.Start),
			)

			uc.audit.Dispatch(audit.Event{
				SalonID: in.SalonID,
				Action:  "booking_conflict",
				Entity:  "booking",
				Metadata: map[string]any{
					"professional_id": pro.ID,
					"start":           interval.Start,
					"end":             interval.End(),
				},
			})
			return nil, err
		}
		return nil, storageErr(err)
	}

	b.Professional = *pro
	b.Service = *service
	b.Customer = *customer

	logger.L().Info("booking created",
		zap.Uint("salon_id", in.SalonID),
		zap.Uint("booking_id", b.ID),
		zap.Uint("professional_id", pro.ID),
		zap.Time("start", interval.Start),
	)

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

// resolveService looks up the service and applies the fallback duration.
// This is the only place a default duration exists.
func (uc *CreateBooking) resolveService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	service, err := uc.repo.GetService(ctx, salonID, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, storageErr(err)
	}

	if service.DurationMin <= 0 {
		service.DurationMin = domain.DefaultDurationMin
	}

	return service, nil
}

func (uc *CreateBooking) resolveProfessional(
	ctx context.Context,
	salon *models.Salon,
	professionalID uint,
	interval domain.Interval,
) (*models.Professional, error) {

	if professionalID != 0 {
		pro, err := uc.repo.GetProfessional(ctx, salon.ID, professionalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness(httperr.CodeProfessionalNotFound)
			}
			return nil, storageErr(err)
		}
		if !pro.Active {
			return nil, httperr.ErrBusiness(httperr.CodeProfessionalNotFound)
		}
		return pro, nil
	}

	candidates, err := uc.repo.ListActiveProfessionals(ctx, salon.ID)
	if err != nil {
		return nil, storageErr(err)
	}

	return uc.selector.Execute(ctx, salon.Timezone, candidates, interval)
}

// storageErr maps a persistence failure to the storage_unavailable outcome
// while preserving the cause. Business errors pass through untouched.
func storageErr(err error) error {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}
	return fmt.Errorf("%w: %v", httperr.ErrBusiness(httperr.CodeStorageUnavailable), err)
}

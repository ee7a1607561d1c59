package booking

import (
	"context"

	"github.com/salonworks/salon-scheduler/internal/audit"
	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute transitions a booking to cancelled, which frees its interval for
// conflict checks.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, storageErr(err)
	}

	b, err := uc.repo.GetBookingForSalon(ctx, bookingID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, storageErr(err)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

package booking

import (
	"context"

	"github.com/salonworks/salon-scheduler/internal/audit"
	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteBooking) Execute(
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
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, storageErr(err)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

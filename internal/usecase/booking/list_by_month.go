package booking

import (
	"context"
	"time"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/dto"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

type ListBookingsByMonth struct {
	repo domain.Repository
}

func NewListBookingsByMonth(
	repo domain.Repository,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		professionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

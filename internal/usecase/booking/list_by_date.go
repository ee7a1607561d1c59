package booking

import (
	"context"
	"time"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/dto"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	start, end := timezone.DayWindow(date, salon.Timezone)

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

func toListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			Reference:    b.Reference,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			Status:       b.Status,
			CustomerName: b.Customer.Name,
			ServiceName:  b.Service.Name,
		})
	}
	return out
}

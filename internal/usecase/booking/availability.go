package booking

import (
	"context"
	"fmt"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute reports whether the professional is free for the candidate
// interval. It fetches the whole salon-local calendar day around the
// candidate rather than a range query on computed end times, which keeps the
// overlap logic in one testable place.
//
// A storage failure is reported as busy together with the error: unknown
// state is never treated as available.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	tz string,
	professionalID uint,
	candidate domain.Interval,
) (bool, error) {

	dayStart, dayEnd := timezone.DayWindow(candidate.Start, tz)

	bookings, err := uc.repo.ListBookingsForDay(
		ctx,
		professionalID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return false, fmt.Errorf("%w: %v", httperr.ErrBusiness(httperr.CodeStorageUnavailable), err)
	}

	for _, b := range bookings {
		if domain.Overlaps(domain.IntervalOf(&b), candidate) {
			return false, nil
		}
	}

	return true, nil
}

package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
)

type FreeSlots struct {
	repo domain.Repository
}

func NewFreeSlots(repo domain.Repository) *FreeSlots {
	return &FreeSlots{repo: repo}
}

// Execute enumerates the professional's open slots for one day, stepping by
// the service duration across the working hours and skipping the break and
// already-booked ranges.
func (uc *FreeSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, storageErr(err)
	}
	if service.DurationMin <= 0 {
		service.DurationMin = domain.DefaultDurationMin
	}

	weekday := int(in.Date.Weekday())

	wh, err := uc.repo.GetWorkingHours(ctx, in.ProfessionalID, weekday)
	if err != nil || !wh.Active {
		return []domain.TimeSlot{}, nil
	}

	loc := in.Date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse(domain.TimeFormat, hm)
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(wh.StartTime)
	dayEnd := parseHM(wh.EndTime)

	hasBreak := wh.BreakStart != "" && wh.BreakEnd != ""
	var breakStart, breakEnd time.Time
	if hasBreak {
		breakStart = parseHM(wh.BreakStart)
		breakEnd = parseHM(wh.BreakEnd)
	}

	bookings, err := uc.repo.ListBookingsForDay(
		ctx,
		in.ProfessionalID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, storageErr(err)
	}

	slotDuration := time.Duration(service.DurationMin) * time.Minute
	var slots []domain.TimeSlot

	bIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		if hasBreak && slotStart.Before(breakEnd) && slotEnd.After(breakStart) {
			continue
		}

		// skip bookings that ended before this slot
		for bIdx < len(bookings) && !bookings[bIdx].EndTime.After(slotStart) {
			bIdx++
		}

		conflict := false
		if bIdx < len(bookings) {
			b := bookings[bIdx]
			if slotStart.Before(b.EndTime) && slotEnd.After(b.StartTime) {
				conflict = true
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format(domain.TimeFormat),
				End:   slotEnd.Format(domain.TimeFormat),
			})
		}
	}

	return slots, nil
}

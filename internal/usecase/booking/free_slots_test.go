package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
)

func testDay(t *testing.T) time.Time {
	t.Helper()
	day := time.Now().UTC().AddDate(0, 0, 7)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

func slotStarts(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func TestFreeSlots_FullShift(t *testing.T) {
	repo := newFakeRepo()
	uc := NewFreeSlots(repo)

	day := testDay(t)
	repo.setWorkingHours(1, workingHoursFor(int(day.Weekday()), "09:00", "12:00", "", ""))

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           day,
	})

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		slotStarts(slots),
	)
}

func TestFreeSlots_BookedRangeExcluded(t *testing.T) {
	repo := newFakeRepo()
	uc := NewFreeSlots(repo)

	day := testDay(t)
	repo.setWorkingHours(1, workingHoursFor(int(day.Weekday()), "09:00", "12:00", "", ""))

	booked := time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, time.UTC)
	repo.seedBooking(1, booked, 30, "confirmed")

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           day,
	})

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"09:00", "09:30", "10:30", "11:00", "11:30"},
		slotStarts(slots),
	)
}

func TestFreeSlots_BreakExcluded(t *testing.T) {
	repo := newFakeRepo()
	uc := NewFreeSlots(repo)

	day := testDay(t)
	repo.setWorkingHours(1, workingHoursFor(int(day.Weekday()), "09:00", "13:00", "11:00", "12:00"))

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           day,
	})

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "12:00", "12:30"},
		slotStarts(slots),
	)
}

func TestFreeSlots_LongerServiceStepsWider(t *testing.T) {
	repo := newFakeRepo()
	uc := NewFreeSlots(repo)

	day := testDay(t)
	repo.setWorkingHours(1, workingHoursFor(int(day.Weekday()), "09:00", "13:00", "", ""))

	// 90-minute coloring only fits twice in a four-hour shift.
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 1,
		ServiceID:      12,
		Date:           day,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:30"}, slotStarts(slots))
}

func TestFreeSlots_DayOffIsEmpty(t *testing.T) {
	repo := newFakeRepo()
	uc := NewFreeSlots(repo)

	// No working-hours row for the weekday at all.
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           testDay(t),
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFreeSlots_UnknownServiceNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewFreeSlots(repo)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 1,
		ServiceID:      999,
		Date:           testDay(t),
	})

	assert.Equal(t, httperr.CodeServiceNotFound, httperr.BusinessCode(err))
}

func TestFreeSlots_ServiceLookupFailureIsStorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.failGetService = errAvailabilityStore
	uc := NewFreeSlots(repo)

	// A store outage must not masquerade as a missing service.
	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           testDay(t),
	})

	assert.Equal(t, httperr.CodeStorageUnavailable, httperr.BusinessCode(err))
	assert.ErrorContains(t, err, "connection refused")
}

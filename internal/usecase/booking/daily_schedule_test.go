package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
)

func TestDailySchedule_GroupsAndSorts(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDailySchedule(repo)

	day := testDay(t)

	// Out-of-order inserts; the report must come back sorted by name and
	// by start within each professional.
	repo.seedBooking(2, day.Add(15*time.Hour), 30, "confirmed")
	repo.seedBooking(1, day.Add(14*time.Hour), 30, "confirmed")
	repo.seedBooking(1, day.Add(9*time.Hour), 30, "confirmed")

	report, err := uc.Execute(context.Background(), 1, day)

	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, "Aylin", report[0].Professional)
	assert.Equal(t, []domain.BusyWindow{
		{Start: "09:00", End: "09:30"},
		{Start: "14:00", End: "14:30"},
	}, report[0].Busy)

	assert.Equal(t, "Burak", report[1].Professional)
}

func TestDailySchedule_CancelledExcluded(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDailySchedule(repo)

	day := testDay(t)
	repo.seedBooking(1, day.Add(14*time.Hour), 30, "cancelled")

	report, err := uc.Execute(context.Background(), 1, day)

	require.NoError(t, err)
	assert.Empty(t, report)
}

// A read-only report: running it twice gives identical output and books
// nothing.
func TestDailySchedule_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDailySchedule(repo)

	day := testDay(t)
	repo.seedBooking(1, day.Add(10*time.Hour), 45, "confirmed")

	first, err := uc.Execute(context.Background(), 1, day)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), 1, day)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, repo.bookings, 1)
}

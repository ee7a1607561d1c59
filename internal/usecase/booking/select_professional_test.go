package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonworks/salon-scheduler/internal/httperr"
)

func TestSelectProfessional_AllFreePicksFirst(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSelectProfessional(repo)

	candidates, err := repo.ListActiveProfessionals(context.Background(), 1)
	require.NoError(t, err)

	pro, err := uc.Execute(context.Background(), "UTC", candidates, slotAt(t, "14:00", 30))

	require.NoError(t, err)
	assert.Equal(t, uint(1), pro.ID)
}

func TestSelectProfessional_SkipsBusyCandidate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSelectProfessional(repo)

	slot := slotAt(t, "14:00", 30)
	repo.seedBooking(1, slot.Start, slot.DurationMin, "confirmed")

	candidates, err := repo.ListActiveProfessionals(context.Background(), 1)
	require.NoError(t, err)

	pro, err := uc.Execute(context.Background(), "UTC", candidates, slot)

	require.NoError(t, err)
	assert.Equal(t, uint(2), pro.ID)
}

func TestSelectProfessional_SkipsOffShiftCandidate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSelectProfessional(repo)

	slot := slotAt(t, "14:00", 30)
	weekday := int(slot.Start.Weekday())

	// Aylin works mornings only; Burak covers the afternoon.
	repo.setWorkingHours(1, workingHoursFor(weekday, "09:00", "12:00", "", ""))
	repo.setWorkingHours(2, workingHoursFor(weekday, "12:00", "18:00", "", ""))

	candidates, err := repo.ListActiveProfessionals(context.Background(), 1)
	require.NoError(t, err)

	pro, err := uc.Execute(context.Background(), "UTC", candidates, slot)

	require.NoError(t, err)
	assert.Equal(t, uint(2), pro.ID)
}

func TestSelectProfessional_NoneAvailable(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSelectProfessional(repo)

	slot := slotAt(t, "14:00", 30)
	repo.seedBooking(1, slot.Start, slot.DurationMin, "confirmed")
	repo.seedBooking(2, slot.Start, slot.DurationMin, "confirmed")
	repo.seedBooking(3, slot.Start, slot.DurationMin, "confirmed")

	candidates, err := repo.ListActiveProfessionals(context.Background(), 1)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), "UTC", candidates, slot)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNoProfessionalAvailable))
}

// The same inputs always pick the same professional.
func TestSelectProfessional_Deterministic(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSelectProfessional(repo)

	slot := slotAt(t, "14:00", 30)
	repo.seedBooking(1, slot.Start, slot.DurationMin, "confirmed")

	candidates, err := repo.ListActiveProfessionals(context.Background(), 1)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		pro, err := uc.Execute(context.Background(), "UTC", candidates, slot)
		require.NoError(t, err)
		assert.Equal(t, uint(2), pro.ID)
	}
}

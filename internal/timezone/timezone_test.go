package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Europe/Istanbul"))
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus_Mons"))
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	def, err := time.LoadLocation(DefaultTimezone)
	require.NoError(t, err)

	assert.Equal(t, def, Location(""))
	assert.Equal(t, def, Location("nonsense"))

	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	assert.Equal(t, sp, Location("America/Sao_Paulo"))
}

func TestDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	// Mid-afternoon local time.
	at := time.Date(2026, 9, 1, 15, 30, 0, 0, loc)

	start, end := DayWindow(at, "Europe/Istanbul")

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, start.Add(24*time.Hour), end)
}

// An instant near UTC midnight must land in the salon-local day, not the
// UTC one.
func TestDayWindow_CrossesUTCMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	// 23:30 UTC on Sep 1 is 02:30 on Sep 2 in Istanbul.
	at := time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)

	start, _ := DayWindow(at, "Europe/Istanbul")

	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, loc), start)
}

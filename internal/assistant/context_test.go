package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	ucbooking "github.com/salonworks/salon-scheduler/internal/usecase/booking"
)

func TestBuildScheduleContext_Empty(t *testing.T) {
	got := BuildScheduleContext("2026-09-01", nil)

	assert.Contains(t, got, "2026-09-01")
	assert.Contains(t, got, "fully free")
}

func TestBuildScheduleContext_RendersWindows(t *testing.T) {
	schedules := []ucbooking.ProfessionalSchedule{
		{
			Professional: "Aylin",
			Busy: []domain.BusyWindow{
				{Start: "09:00", End: "09:30"},
				{Start: "14:00", End: "15:30"},
			},
		},
		{
			Professional: "Burak",
			Busy: []domain.BusyWindow{
				{Start: "10:00", End: "10:30"},
			},
		},
	}

	got := BuildScheduleContext("2026-09-01", schedules)

	assert.Contains(t, got, "Aylin: 09:00-09:30, 14:00-15:30")
	assert.Contains(t, got, "Burak: 10:00-10:30")
}

func TestReplyForError_CoversSchedulingOutcomes(t *testing.T) {
	codes := []string{
		httperr.CodeServiceNotFound,
		httperr.CodeProfessionalNotFound,
		httperr.CodeNoProfessionalAvailable,
		httperr.CodeTimeConflict,
		httperr.CodeOutsideWorkingHours,
		"too_soon",
		"invalid_date_or_time",
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		reply := ReplyForError(httperr.ErrBusiness(code))
		assert.NotEmpty(t, reply, code)
		assert.False(t, seen[reply], "duplicate reply for %s", code)
		seen[reply] = true
	}

	// Unknown errors still produce something sendable.
	assert.NotEmpty(t, ReplyForError(nil))
}

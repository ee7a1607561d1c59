package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

// ProfessionalSchedule is one professional's busy windows for a day,
// wall-clock formatted, sorted by start time.
type ProfessionalSchedule struct {
	Professional string              `json:"professional"`
	Busy         []domain.BusyWindow `json:"busy"`
}

type DailySchedule struct {
	repo domain.Repository
}

func NewDailySchedule(repo domain.Repository) *DailySchedule {
	return &DailySchedule{repo: repo}
}

// Execute builds the salon's busy-slot report for a date. Read-only and
// deterministic: the same bookings always produce the same report, which the
// assistant embeds verbatim in its prompt context.
func (uc *DailySchedule) Execute(
	ctx context.Context,
	salonID uint,
	date time.Time,
) ([]ProfessionalSchedule, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)
	dayStart, dayEnd := timezone.DayWindow(date, salon.Timezone)

	bookings, err := uc.repo.ListSalonBookingsForDay(ctx, salonID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	byName := make(map[string][]domain.BusyWindow)
	for _, b := range bookings {
		name := b.Professional.Name
		byName[name] = append(byName[name], domain.BusyWindow{
			Start: b.StartTime.In(loc).Format(domain.TimeFormat),
			End:   b.EndTime.In(loc).Format(domain.TimeFormat),
		})
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ProfessionalSchedule, 0, len(names))
	for _, name := range names {
		windows := byName[name]
		sort.Slice(windows, func(i, j int) bool {
			return windows[i].Start < windows[j].Start
		})
		out = append(out, ProfessionalSchedule{
			Professional: name,
			Busy:         windows,
		})
	}

	return out, nil
}

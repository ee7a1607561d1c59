package assistant

import (
	"fmt"
	"strings"

	ucbooking "github.com/salonworks/salon-scheduler/internal/usecase/booking"
)

// BuildScheduleContext renders the daily busy-slot report as the plain-text
// block the proposer receives before the customer's message.
func BuildScheduleContext(date string, schedules []ucbooking.ProfessionalSchedule) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Busy slots for %s:\n", date)

	if len(schedules) == 0 {
		sb.WriteString("All professionals are fully free.\n")
		return sb.String()
	}

	for _, s := range schedules {
		windows := make([]string, 0, len(s.Busy))
		for _, w := range s.Busy {
			windows = append(windows, w.Start+"-"+w.End)
		}
		fmt.Fprintf(&sb, "%s: %s\n", s.Professional, strings.Join(windows, ", "))
	}

	return sb.String()
}

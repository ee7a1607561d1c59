package booking

import "time"

type AvailabilityInput struct {
	SalonID        uint
	ProfessionalID uint
	ServiceID      uint
	Date           time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BusyWindow is one occupied range in a professional's daily schedule,
// formatted as salon-local wall clock.
type BusyWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

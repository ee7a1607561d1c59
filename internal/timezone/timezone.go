package timezone

import "time"

// Every salon operates in a single local timezone. Dates and times coming
// from clients are wall-clock in that zone; instants are stored in UTC.
const DefaultTimezone = "Europe/Istanbul"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayWindow returns the half-open [00:00, +24h) window of the salon-local
// calendar day containing t.
func DayWindow(t time.Time, tz string) (time.Time, time.Time) {
	loc := Location(tz)
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

package handlers

import (
	"time"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

// All request dates/times are wall-clock in the salon's timezone; they are
// converted to instants here, at the boundary, and nowhere else.

func locationFromSalon(salon *models.Salon) *time.Location {
	return timezone.Location(salon.Timezone)
}

func parseDateInSalon(salon *models.Salon, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		domain.DateFormat,
		dateStr,
		locationFromSalon(salon),
	)
}

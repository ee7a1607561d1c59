package booking

import (
	"time"

	"github.com/salonworks/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// IntervalOf derives the booked interval from a persisted booking.
func IntervalOf(b *models.Booking) Interval {
	return Interval{Start: b.StartTime, DurationMin: b.DurationMin}
}

package assistant

import (
	"fmt"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
)

// ReplyForBooking formats the confirmation relayed to the customer.
func ReplyForBooking(b *models.Booking) string {
	return fmt.Sprintf(
		"Your appointment is confirmed: %s with %s on %s at %s. Reference: %s.",
		b.Service.Name,
		b.Professional.Name,
		b.StartTime.Format(domain.DateFormat),
		b.StartTime.Format(domain.TimeFormat),
		b.Reference,
	)
}

// ReplyForError maps a scheduling outcome to customer-facing text. Callers
// must never silently rebook a different slot or professional; the customer
// is always told what happened.
func ReplyForError(err error) string {
	switch httperr.BusinessCode(err) {
	case httperr.CodeServiceNotFound:
		return "Sorry, I couldn't find that service. Could you pick one from our list?"
	case httperr.CodeProfessionalNotFound:
		return "That staff member isn't available for bookings. Would someone else do?"
	case httperr.CodeNoProfessionalAvailable:
		return "No staff is free at that time. Could you try another slot?"
	case httperr.CodeTimeConflict:
		return "That time was just taken. Would another time work for you?"
	case httperr.CodeOutsideWorkingHours:
		return "We're closed at that time. Could you pick a time within opening hours?"
	case "too_soon":
		return "That's a bit short notice for us. Could you pick a later time?"
	case "invalid_date_or_time":
		return "I didn't catch the date or time. Could you repeat it, e.g. 2026-09-01 14:00?"
	default:
		return "Something went wrong on our side. Please try again in a moment."
	}
}

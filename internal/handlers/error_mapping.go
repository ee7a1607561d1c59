package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salonworks/salon-scheduler/internal/httperr"
)

// writeBusinessError maps a business error to its HTTP status. Anything
// that is not a business error is reported as an internal failure.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch code {
	case httperr.CodeTimeConflict:
		httperr.Conflict(c, code, "The requested time slot is already taken.")
	case httperr.CodeNoProfessionalAvailable:
		httperr.Conflict(c, code, "No professional is available at the requested time.")
	case httperr.CodeStorageUnavailable:
		httperr.Unavailable(c, code, "The booking storage is temporarily unavailable.")
	case httperr.CodeServiceNotFound:
		httperr.NotFound(c, code, "Service not found.")
	case httperr.CodeProfessionalNotFound:
		httperr.NotFound(c, code, "Professional not found.")
	case httperr.CodeBookingNotFound:
		httperr.NotFound(c, code, "Booking not found.")
	case httperr.CodeOutsideWorkingHours:
		httperr.BadRequest(c, code, "The requested time is outside working hours.")
	case httperr.CodeInvalidState:
		httperr.BadRequest(c, code, "The booking cannot change to that state.")
	case "too_soon":
		httperr.BadRequest(c, code, "Bookings need more advance notice.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Invalid date or time format.")
	case "":
		httperr.Internal(c, "internal_error", "Something went wrong.")
	default:
		httperr.BadRequest(c, code, "The request could not be processed.")
	}
}

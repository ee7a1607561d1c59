package httperr

import "errors"

// BusinessError is a typed outcome the scheduling core returns instead of a
// generic error, so every caller (REST, assistant, webhook bot) can match on
// the code and produce its own user-facing text.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" when err is
// not one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// Outcome codes of the scheduling core.
const (
	CodeServiceNotFound         = "service_not_found"
	CodeProfessionalNotFound    = "professional_not_found"
	CodeNoProfessionalAvailable = "no_professional_available"
	CodeTimeConflict            = "time_conflict"
	CodeStorageUnavailable      = "storage_unavailable"
	CodeOutsideWorkingHours     = "outside_working_hours"
	CodeBookingNotFound         = "booking_not_found"
	CodeInvalidState            = "invalid_state"
)

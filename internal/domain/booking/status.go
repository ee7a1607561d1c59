package booking

import "github.com/salonworks/salon-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is the status assigned by the booking transaction.
func InitialStatus() Status {
	return StatusConfirmed
}

// BlocksSlot reports whether a booking in this status still occupies its
// interval for conflict purposes. Only cancelled bookings free the slot.
func BlocksSlot(s Status) bool {
	return s != StatusCancelled
}

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

package lock

import (
	"context"
	"fmt"
	"time"
)

// HoldTimeout bounds how long a holder may keep the check-then-create
// section running. The redis lock is not renewed while held, so its TTL
// must stay above this value or a stalled holder could lose the lock
// mid-transaction and let a second instance double-book.
const HoldTimeout = 5 * time.Second

// Locker serializes the check-then-create section of the booking transaction
// per professional. Readers never take this lock.
type Locker interface {
	// Acquire blocks until the lock for key is held or ctx is done. The
	// returned release function must be called exactly once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// ProfessionalKey builds the lock key guarding one professional's agenda.
func ProfessionalKey(salonID, professionalID uint) string {
	return fmt.Sprintf("booking:%d:%d", salonID, professionalID)
}

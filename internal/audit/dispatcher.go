package audit

import (
	"go.uber.org/zap"

	"github.com/salonworks/salon-scheduler/internal/logger"
)

type Event struct {
	SalonID  uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes audit events from a single background goroutine so the
// request path never waits on the audit table.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(auditLogger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: auditLogger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.SalonID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.L().Warn("audit write failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue drops the event; audit must never block the API
		logger.L().Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}

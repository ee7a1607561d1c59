package assistant

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/logger"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/timezone"
	ucbooking "github.com/salonworks/salon-scheduler/internal/usecase/booking"
)

type HandleInput struct {
	SalonID       uint
	CustomerName  string
	CustomerPhone string
	Message       string

	// Conversation history, owned and persisted by the caller.
	History []Message
}

type HandleResult struct {
	Reply   string
	Booking *models.Booking
}

// Assistant wires the proposer to the scheduling core: schedule context in,
// intent out, booking outcome back as a human reply.
type Assistant struct {
	repo     domain.Repository
	schedule *ucbooking.DailySchedule
	create   *ucbooking.CreateBooking
	proposer IntentProposer
}

func New(
	repo domain.Repository,
	schedule *ucbooking.DailySchedule,
	create *ucbooking.CreateBooking,
	proposer IntentProposer,
) *Assistant {
	return &Assistant{
		repo:     repo,
		schedule: schedule,
		create:   create,
		proposer: proposer,
	}
}

func (a *Assistant) HandleMessage(
	ctx context.Context,
	in HandleInput,
) (*HandleResult, error) {

	salon, err := a.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	today := timezone.NowIn(salon.Timezone)

	schedules, err := a.schedule.Execute(ctx, in.SalonID, today)
	if err != nil {
		// The assistant can still chat without the schedule; the booking
		// transaction re-checks anyway.
		logger.L().Warn("assistant: schedule context unavailable", zap.Error(err))
		schedules = nil
	}

	scheduleCtx := BuildScheduleContext(today.Format(domain.DateFormat), schedules)

	proposal, err := a.proposer.Propose(ctx, scheduleCtx, in.History, in.Message)
	if err != nil {
		return nil, err
	}

	if proposal.Intent == nil {
		return &HandleResult{Reply: proposal.Reply}, nil
	}

	return a.executeIntent(ctx, in, proposal.Intent)
}

func (a *Assistant) executeIntent(
	ctx context.Context,
	in HandleInput,
	intent *Intent,
) (*HandleResult, error) {

	if intent.Action != ActionCreateAppointment {
		return &HandleResult{Reply: ReplyForError(nil)}, nil
	}

	b, err := a.create.Execute(ctx, ucbooking.CreateBookingInput{
		SalonID:        in.SalonID,
		ProfessionalID: intent.ProfessionalID,
		ServiceID:      intent.ServiceID,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		Date:           intent.Date,
		Time:           intent.Time,
		Notes:          intent.Notes,
	})
	if err != nil {
		return &HandleResult{Reply: ReplyForError(err)}, nil
	}

	return &HandleResult{
		Reply:   ReplyForBooking(b),
		Booking: b,
	}, nil
}

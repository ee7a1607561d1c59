package botflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/salonworks/salon-scheduler/internal/assistant"
	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
	ucbooking "github.com/salonworks/salon-scheduler/internal/usecase/booking"
)

// Step of the guided booking conversation.
type Step string

const (
	StepService Step = "service"
	StepDate    Step = "date"
	StepTime    Step = "time"
)

// State is the whole conversation state. It is owned by the caller (the
// webhook handler keeps it in redis per phone number) and passed in on
// every turn; the flow itself holds nothing between calls.
type State struct {
	Step      Step   `json:"step"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
}

// Flow drives the service → date → time conversation that ends in a
// booking. Any professional is accepted; the selector picks one.
type Flow struct {
	repo   domain.Repository
	create *ucbooking.CreateBooking
}

func New(repo domain.Repository, create *ucbooking.CreateBooking) *Flow {
	return &Flow{repo: repo, create: create}
}

// Advance consumes one inbound message and returns the next state plus the
// reply to send. A completed or aborted conversation comes back as the zero
// state.
func (f *Flow) Advance(
	ctx context.Context,
	salonID uint,
	customerName string,
	customerPhone string,
	state State,
	input string,
) (State, string, error) {

	input = strings.TrimSpace(input)

	switch state.Step {
	case StepService:
		return f.advanceService(ctx, salonID, state, input)
	case StepDate:
		return f.advanceDate(state, input)
	case StepTime:
		return f.advanceTime(ctx, salonID, customerName, customerPhone, state, input)
	default:
		return f.start(ctx, salonID)
	}
}

func (f *Flow) start(ctx context.Context, salonID uint) (State, string, error) {
	services, err := f.repo.ListActiveServices(ctx, salonID)
	if err != nil {
		return State{}, "", err
	}

	reply := "Hello! I can book your appointment. Which service would you like?\n" + serviceMenu(services)
	return State{Step: StepService}, reply, nil
}

func (f *Flow) advanceService(
	ctx context.Context,
	salonID uint,
	state State,
	input string,
) (State, string, error) {

	services, err := f.repo.ListActiveServices(ctx, salonID)
	if err != nil {
		return State{}, "", err
	}

	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 {
		return state, "Please answer with the number of a service:\n" + serviceMenu(services), nil
	}
	if choice > len(services) {
		return state, "That's not on the list. Please pick a number:\n" + serviceMenu(services), nil
	}

	state.ServiceID = services[choice-1].ID
	state.Step = StepDate
	return state, "Great. Which date? (YYYY-MM-DD)", nil
}

func (f *Flow) advanceDate(state State, input string) (State, string, error) {
	if _, err := time.Parse(domain.DateFormat, input); err != nil {
		return state, "I couldn't read that date. Please use YYYY-MM-DD, e.g. 2026-09-01.", nil
	}

	state.Date = input
	state.Step = StepTime
	return state, "And what time? (HH:MM)", nil
}

func (f *Flow) advanceTime(
	ctx context.Context,
	salonID uint,
	customerName string,
	customerPhone string,
	state State,
	input string,
) (State, string, error) {

	if _, err := time.Parse(domain.TimeFormat, input); err != nil {
		return state, "I couldn't read that time. Please use HH:MM, e.g. 14:30.", nil
	}

	b, err := f.create.Execute(ctx, ucbooking.CreateBookingInput{
		SalonID:       salonID,
		ServiceID:     state.ServiceID,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Date:          state.Date,
		Time:          input,
	})
	if err != nil {
		if httperr.BusinessCode(err) != "" {
			// Recoverable outcome: keep the conversation at the time step
			// so the customer can answer with another slot.
			return state, assistant.ReplyForError(err), nil
		}
		return State{}, "", err
	}

	return State{}, assistant.ReplyForBooking(b), nil
}

func serviceMenu(services []models.Service) string {
	var sb strings.Builder
	for i, s := range services {
		fmt.Fprintf(&sb, "%d. %s (%d min)\n", i+1, s.Name, s.DurationMin)
	}
	return sb.String()
}

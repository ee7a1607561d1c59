package booking

import (
	"context"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type SelectProfessional struct {
	repo         domain.Repository
	availability *CheckAvailability
}

func NewSelectProfessional(repo domain.Repository) *SelectProfessional {
	return &SelectProfessional{
		repo:         repo,
		availability: NewCheckAvailability(repo),
	}
}

// Execute walks the candidates in the given order and returns the first one
// that is free for the interval and on shift. Greedy first-fit: callers that
// want fairness or load balancing don't get it here, and the webhook and
// assistant flows rely on the answer being deterministic.
func (uc *SelectProfessional) Execute(
	ctx context.Context,
	tz string,
	candidates []models.Professional,
	candidate domain.Interval,
) (*models.Professional, error) {

	for i := range candidates {
		pro := &candidates[i]

		free, err := uc.availability.Execute(ctx, tz, pro.ID, candidate)
		if err != nil {
			return nil, err
		}
		if !free {
			continue
		}

		onShift, err := uc.repo.IsWithinWorkingHours(
			ctx,
			pro.ID,
			candidate.Start,
			candidate.End(),
		)
		if err != nil {
			return nil, err
		}
		if onShift {
			return pro, nil
		}
	}

	return nil, httperr.ErrBusiness(httperr.CodeNoProfessionalAvailable)
}

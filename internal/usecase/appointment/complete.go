package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/medconnect/telemed-api/internal/audit"
	domain "github.com/medconnect/telemed-api/internal/domain/appointment"
	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/models"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	callerID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeParty(ap, callerID); err != nil {
		return nil, err
	}

	if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	// The conditional update re-checks the status so a concurrent complete
	// cannot slip through between the read and the write.
	done, err := uc.repo.MarkCompleted(ctx, ap.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}

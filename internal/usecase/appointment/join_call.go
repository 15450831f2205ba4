package appointment

import (
	"context"
	"errors"

	domain "github.com/medconnect/telemed-api/internal/domain/appointment"
	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/models"
)

type JoinCall struct {
	repo domain.Repository
}

func NewJoinCall(
	repo domain.Repository,
) *JoinCall {
	return &JoinCall{
		repo: repo,
	}
}

// Execute is the second party's path into the call: it hands back the
// appointment with its room id and never transitions state or regenerates
// the room. Joining a call that was never started is a conflict.
func (uc *JoinCall) Execute(
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

	if ap.VideoRoomID == nil {
		return nil, httperr.ErrBusiness("call_not_started")
	}

	return ap, nil
}

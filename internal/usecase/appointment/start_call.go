package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/medconnect/telemed-api/internal/audit"
	domain "github.com/medconnect/telemed-api/internal/domain/appointment"
	"github.com/medconnect/telemed-api/internal/httperr"
)

type StartCall struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewStartCall(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *StartCall {
	return &StartCall{
		repo:  repo,
		audit: audit,
	}
}

// Execute assigns the appointment's video room exactly once and moves it to
// active. Any later start, from either party, returns the room id that won
// without touching the record.
func (uc *StartCall) Execute(
	ctx context.Context,
	appointmentID string,
	callerID string,
) (string, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return "", err
	}

	if err := domain.AuthorizeParty(ap, callerID); err != nil {
		return "", err
	}

	// A completed appointment stays completed; its old room id is not
	// handed out again.
	if err := domain.CanActivate(domain.Status(ap.Status)); err != nil {
		return "", err
	}

	if ap.VideoRoomID != nil {
		return *ap.VideoRoomID, nil
	}

	roomID := uuid.NewString()
	claimed, err := uc.repo.ClaimVideoRoom(ctx, ap.ID, roomID, time.Now().UTC())
	if err != nil {
		return "", err
	}

	if !claimed {
		// The other party got there first; converge on their room id.
		ap, err = uc.repo.GetAppointment(ctx, appointmentID)
		if err != nil {
			return "", err
		}
		if ap.VideoRoomID == nil {
			return "", httperr.ErrBusiness("invalid_state")
		}
		return *ap.VideoRoomID, nil
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "call_started",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return roomID, nil
}

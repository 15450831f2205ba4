package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/medconnect/telemed-api/internal/models"
)

// ErrNotFound reports a missing appointment or doctor profile. The storage
// layer translates its driver's not-found into it, so callers can tell a
// missing record from an infrastructure failure.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Directory --------
	GetDoctorProfile(
		ctx context.Context,
		id string,
	) (*models.DoctorProfile, error)

	// -------- Appointment (create / read) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointmentsForUser(
		ctx context.Context,
		userID string,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------

	// ClaimVideoRoom assigns roomID and moves the appointment to active,
	// but only if no room has been assigned yet. Returns false when another
	// caller already claimed the room; the record is untouched in that case.
	ClaimVideoRoom(
		ctx context.Context,
		appointmentID string,
		roomID string,
		now time.Time,
	) (bool, error)

	// MarkCompleted moves an active appointment to completed. Returns false
	// when the appointment was not active.
	MarkCompleted(
		ctx context.Context,
		appointmentID string,
		now time.Time,
	) (bool, error)
}

package appointment

import "github.com/medconnect/telemed-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// ===============================
// Appointment Type
// ===============================

type Type string

const (
	TypeInstant   Type = "instant"
	TypeScheduled Type = "scheduled"
)

func IsValidType(t Type) bool {
	return t == TypeInstant || t == TypeScheduled
}

// ===============================
// Validations
// ===============================

// Transitions are monotonic: pending -> active -> completed. There is no
// reverse edge and no skipping.

// CanActivate reports whether the call may move the appointment to active.
// An already-active appointment is allowed through; start is idempotent.
func CanActivate(current Status) error {
	if current != StatusPending && current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete requires the appointment to have passed through active.
func CanComplete(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

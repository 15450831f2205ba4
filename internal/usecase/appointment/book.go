package appointment

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/medconnect/telemed-api/internal/audit"
	domain "github.com/medconnect/telemed-api/internal/domain/appointment"
	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/models"
	"github.com/medconnect/telemed-api/internal/payments"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID string
	DoctorID  string

	Type          string
	ScheduledTime *time.Time
}

type BookAppointmentResult struct {
	Appointment *models.Appointment

	// Checkout link for the consultation fee, empty when payments are off.
	PaymentURL string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	payments payments.Client
	now      func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	payments payments.Client,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		audit:    audit,
		payments: payments,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*BookAppointmentResult, error) {

	apType := domain.Type(in.Type)
	if !domain.IsValidType(apType) {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	// Scheduled bookings need a future timestamp. Instant bookings connect
	// immediately; a supplied time is discarded.
	var scheduledTime *time.Time
	switch apType {
	case domain.TypeScheduled:
		if in.ScheduledTime == nil {
			return nil, httperr.ErrBusiness("missing_scheduled_time")
		}
		if !in.ScheduledTime.After(uc.now()) {
			return nil, httperr.ErrBusiness("scheduled_time_in_past")
		}
		t := in.ScheduledTime.UTC()
		scheduledTime = &t
	case domain.TypeInstant:
		scheduledTime = nil
	}

	profile, err := uc.repo.GetDoctorProfile(ctx, in.DoctorID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}
	if err != nil {
		return nil, err
	}
	if !profile.Available {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	ap := &models.Appointment{
		PatientID:     in.PatientID,
		DoctorID:      profile.ID,
		DoctorUserID:  profile.UserID,
		Type:          string(apType),
		ScheduledTime: scheduledTime,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.PatientID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"doctor_id": ap.DoctorID,
			"type":      ap.Type,
		},
	})

	result := &BookAppointmentResult{Appointment: ap}

	if uc.payments != nil && profile.ConsultationFee > 0 {
		url, err := uc.payments.CheckoutURL(
			ctx,
			"Consultation: "+profile.Specialization,
			profile.ConsultationFee,
			ap.ID,
		)
		if err != nil {
			log.Println("payment preference error:", err)
		} else {
			result.PaymentURL = url
		}
	}

	return result, nil
}

package doctor

import (
	"context"

	"github.com/medconnect/telemed-api/internal/audit"
	domain "github.com/medconnect/telemed-api/internal/domain/doctor"
	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterDoctorInput struct {
	UserID string

	Specialization  string
	ExperienceYears int
	LicenseNumber   string
	Bio             string
	ConsultationFee float64
}

// ======================================================
// USE CASE
// ======================================================

type RegisterDoctor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterDoctor(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterDoctor {
	return &RegisterDoctor{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute turns a patient into a doctor. Each user gets at most one
// profile; a second registration attempt is a conflict and leaves the
// first profile untouched.
func (uc *RegisterDoctor) Execute(
	ctx context.Context,
	in RegisterDoctorInput,
) (*models.DoctorProfile, error) {

	profile := &models.DoctorProfile{
		UserID:          in.UserID,
		Specialization:  in.Specialization,
		ExperienceYears: in.ExperienceYears,
		LicenseNumber:   in.LicenseNumber,
		Bio:             in.Bio,
		ConsultationFee: in.ConsultationFee,
		Available:       true,
	}

	created, err := uc.repo.RegisterProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, httperr.ErrBusiness("already_registered")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "doctor_registered",
		Entity:   "doctor_profile",
		EntityID: &profile.ID,
	})

	return profile, nil
}

package appointment

import (
	"context"

	domain "github.com/medconnect/telemed-api/internal/domain/appointment"
	"github.com/medconnect/telemed-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute returns every appointment the caller is a party to, in insertion
// order, each enriched with the counterpart's display fields.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	callerID string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:            ap.ID,
			Type:          ap.Type,
			Status:        ap.Status,
			ScheduledTime: ap.ScheduledTime,
			VideoRoomID:   ap.VideoRoomID,
			CreatedAt:     ap.CreatedAt,
		}

		if ap.PatientID == callerID {
			item.Doctor = &dto.PartyInfo{
				Name:           ap.DoctorProfile.User.Name,
				Picture:        ap.DoctorProfile.User.Picture,
				Specialization: ap.DoctorProfile.Specialization,
			}
		} else {
			item.Patient = &dto.PartyInfo{
				Name:    ap.Patient.Name,
				Picture: ap.Patient.Picture,
			}
		}

		out = append(out, item)
	}

	return out, nil
}

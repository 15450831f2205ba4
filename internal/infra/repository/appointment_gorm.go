package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/medconnect/telemed-api/internal/domain/appointment"
	"github.com/medconnect/telemed-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorProfile(
	ctx context.Context,
	id string,
) (*models.DoctorProfile, error) {

	var profile models.DoctorProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Appointment (create / read)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("DoctorProfile").
		Preload("DoctorProfile.User").
		Where("patient_id = ? OR doctor_user_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

// The room id must be assigned exactly once even when both parties start
// the call at the same instant. A conditional single-row UPDATE keyed on
// video_room_id IS NULL serializes the claim inside the database; there is
// no cross-appointment lock.
func (r *AppointmentGormRepository) ClaimVideoRoom(
	ctx context.Context,
	appointmentID string,
	roomID string,
	now time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND video_room_id IS NULL", appointmentID).
		Updates(map[string]any{
			"video_room_id": roomID,
			"status":        string(domain.StatusActive),
			"started_at":    now,
		})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected == 1, nil
}

func (r *AppointmentGormRepository) MarkCompleted(
	ctx context.Context,
	appointmentID string,
	now time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", appointmentID, string(domain.StatusActive)).
		Updates(map[string]any{
			"status":       string(domain.StatusCompleted),
			"completed_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected == 1, nil
}

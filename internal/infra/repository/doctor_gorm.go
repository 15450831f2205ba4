package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/medconnect/telemed-api/internal/domain/doctor"
	"github.com/medconnect/telemed-api/internal/models"
)

type DoctorGormRepository struct {
	db *gorm.DB
}

func NewDoctorGormRepository(db *gorm.DB) *DoctorGormRepository {
	return &DoctorGormRepository{db: db}
}

var _ domain.Repository = (*DoctorGormRepository)(nil)

// The profile insert and the role flip share one transaction; user_id
// carries a unique index, so a concurrent duplicate fails the insert
// rather than producing a second profile.
func (r *DoctorGormRepository) RegisterProfile(
	ctx context.Context,
	profile *models.DoctorProfile,
) (bool, error) {

	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.DoctorProfile{}).
			Where("user_id = ?", profile.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", profile.UserID).
			Update("role", models.RoleDoctor).Error; err != nil {
			return err
		}

		created = true
		return nil
	})
	return created, err
}

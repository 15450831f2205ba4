package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/models"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

type sampleDoctor struct {
	Email           string
	Name            string
	Picture         string
	Specialization  string
	ExperienceYears int
	LicenseNumber   string
	Bio             string
	ConsultationFee float64
}

var sampleDoctors = []sampleDoctor{
	{
		Email:           "dr.smith@medconnect.com",
		Name:            "Dr. Sarah Smith",
		Picture:         "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=face",
		Specialization:  "General Medicine",
		ExperienceYears: 8,
		LicenseNumber:   "MD12345",
		Bio:             "Experienced family physician specializing in rural healthcare delivery.",
		ConsultationFee: 75.0,
	},
	{
		Email:           "dr.johnson@medconnect.com",
		Name:            "Dr. Michael Johnson",
		Picture:         "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=150&h=150&fit=crop&crop=face",
		Specialization:  "Cardiology",
		ExperienceYears: 12,
		LicenseNumber:   "MD67890",
		Bio:             "Cardiologist with expertise in remote heart monitoring and consultation.",
		ConsultationFee: 120.0,
	},
	{
		Email:           "dr.wilson@medconnect.com",
		Name:            "Dr. Emily Wilson",
		Picture:         "https://images.unsplash.com/photo-1594824804732-ca8db3ac9421?w=150&h=150&fit=crop&crop=face",
		Specialization:  "Pediatrics",
		ExperienceYears: 6,
		LicenseNumber:   "MD11122",
		Bio:             "Pediatrician dedicated to providing quality healthcare for children in underserved areas.",
		ConsultationFee: 90.0,
	},
}

// InitSampleDoctors seeds demo doctors. Idempotent: existing users are left
// untouched.
func (h *AdminHandler) InitSampleDoctors(c *gin.Context) {
	for _, d := range sampleDoctors {
		var count int64
		if err := h.db.Model(&models.User{}).
			Where("email = ?", d.Email).
			Count(&count).Error; err != nil {
			httperr.Internal(c, "failed_to_seed_doctors", "Failed to initialize sample doctors.")
			return
		}
		if count > 0 {
			continue
		}

		err := h.db.Transaction(func(tx *gorm.DB) error {
			user := models.User{
				Email:   d.Email,
				Name:    d.Name,
				Picture: d.Picture,
				Role:    models.RoleDoctor,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			profile := models.DoctorProfile{
				UserID:          user.ID,
				Specialization:  d.Specialization,
				ExperienceYears: d.ExperienceYears,
				LicenseNumber:   d.LicenseNumber,
				Bio:             d.Bio,
				ConsultationFee: d.ConsultationFee,
				Available:       true,
			}
			return tx.Create(&profile).Error
		})
		if err != nil {
			httperr.Internal(c, "failed_to_seed_doctors", "Failed to initialize sample doctors.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sample doctors initialized", "success": true})
}

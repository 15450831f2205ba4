package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/httpresp"
	"github.com/medconnect/telemed-api/internal/middleware"
	"github.com/medconnect/telemed-api/internal/models"
	ucDoctor "github.com/medconnect/telemed-api/internal/usecase/doctor"
)

type DoctorHandler struct {
	db       *gorm.DB
	register *ucDoctor.RegisterDoctor
}

func NewDoctorHandler(db *gorm.DB, register *ucDoctor.RegisterDoctor) *DoctorHandler {
	return &DoctorHandler{db: db, register: register}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterProfileRequest struct {
	Specialization  string  `json:"specialization" binding:"required"`
	ExperienceYears *int    `json:"experience_years" binding:"required,gte=0"`
	LicenseNumber   string  `json:"license_number" binding:"required"`
	Bio             string  `json:"bio"`
	ConsultationFee float64 `json:"consultation_fee" binding:"gte=0"`
}

type UpdateAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// DoctorListing is the public directory projection: the profile joined
// with the owner's display fields.
type DoctorListing struct {
	models.DoctorProfile
	User struct {
		Name    string `json:"name"`
		Picture string `json:"picture"`
	} `json:"user"`
}

// ======================================================
// REGISTER (patient -> doctor, exactly once)
// ======================================================

func (h *DoctorHandler) RegisterProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req RegisterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	profile, err := h.register.Execute(c.Request.Context(), ucDoctor.RegisterDoctorInput{
		UserID:          userID,
		Specialization:  req.Specialization,
		ExperienceYears: *req.ExperienceYears,
		LicenseNumber:   req.LicenseNumber,
		Bio:             req.Bio,
		ConsultationFee: req.ConsultationFee,
	})
	if err != nil {
		if httperr.IsBusiness(err, "already_registered") {
			httperr.Conflict(c, "already_registered", "Doctor profile already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_profile", "Failed to create doctor profile.")
		return
	}

	httpresp.Success(c, "profile", profile)
}

// ======================================================
// DIRECTORY
// ======================================================

func (h *DoctorHandler) ListAvailable(c *gin.Context) {
	var profiles []models.DoctorProfile
	if err := h.db.
		Preload("User").
		Where("available = ?", true).
		Order("created_at ASC").
		Find(&profiles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Failed to list doctors.")
		return
	}

	out := make([]DoctorListing, 0, len(profiles))
	for _, p := range profiles {
		item := DoctorListing{DoctorProfile: p}
		item.User.Name = p.User.Name
		item.User.Picture = p.User.Picture
		out = append(out, item)
	}

	httpresp.List(c, out)
}

// ======================================================
// OWN PROFILE
// ======================================================

func (h *DoctorHandler) MyProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if !h.requireDoctor(c, userID) {
		return
	}

	var profile models.DoctorProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "profile_not_found", "Doctor profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_profile", "Failed to load doctor profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *DoctorHandler) UpdateAvailability(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if !h.requireDoctor(c, userID) {
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability data.")
		return
	}

	if err := h.db.Model(&models.DoctorProfile{}).
		Where("user_id = ?", userID).
		Update("available", *req.Available).Error; err != nil {
		httperr.Internal(c, "failed_to_update_availability", "Failed to update availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DoctorHandler) requireDoctor(c *gin.Context, userID string) bool {
	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", "Authentication required.")
		return false
	}
	if user.Role != models.RoleDoctor {
		httperr.Forbidden(c, "doctor_access_required", "Doctor access required.")
		return false
	}
	return true
}

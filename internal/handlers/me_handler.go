package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/middleware"
	"github.com/medconnect/telemed-api/internal/models"
	"github.com/medconnect/telemed-api/internal/storage"
)

type MeHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
}

func NewMeHandler(db *gorm.DB, avatars *storage.AvatarStore) *MeHandler {
	return &MeHandler{db: db, avatars: avatars}
}

const maxAvatarBytes = 5 << 20

// UploadAvatar replaces the caller's picture with a processed copy of the
// uploaded image.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	if h.avatars == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "uploads_disabled", "Avatar uploads are not configured.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(string)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "An avatar file is required.")
		return
	}
	defer file.Close()

	if header.Size > maxAvatarBytes {
		httperr.BadRequest(c, "avatar_too_large", "Avatar must be 5MB or smaller.")
		return
	}

	url, err := h.avatars.Upload(c.Request.Context(), userID, file)
	if err != nil {
		httperr.BadRequest(c, "invalid_avatar_image", "Avatar must be a valid JPEG or PNG image.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("picture", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Failed to update avatar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"picture": url, "success": true})
}

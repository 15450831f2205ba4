package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/identity"
	"github.com/medconnect/telemed-api/internal/middleware"
	"github.com/medconnect/telemed-api/internal/models"
	"github.com/medconnect/telemed-api/internal/session"
)

type AuthHandler struct {
	db       *gorm.DB
	idp      identity.Provider
	sessions session.Store
}

func NewAuthHandler(db *gorm.DB, idp identity.Provider, sessions session.Store) *AuthHandler {
	return &AuthHandler{db: db, idp: idp, sessions: sessions}
}

// --------- Requests ---------

type ProcessSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// --------- Handlers ---------

// ProcessSession exchanges the identity provider's session id for a profile,
// creates the user on first sight (role patient) and opens a local session.
func (h *AuthHandler) ProcessSession(c *gin.Context) {
	var req ProcessSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_session_id", "Session ID required.")
		return
	}

	profile, err := h.idp.Exchange(c.Request.Context(), req.SessionID)
	if err == identity.ErrInvalidSession {
		httperr.Unauthorized(c, "invalid_session", "Invalid session.")
		return
	}
	if err != nil {
		httperr.Internal(c, "identity_exchange_failed", "Session processing failed.")
		return
	}

	var user models.User
	err = h.db.Where("email = ?", profile.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Email:   profile.Email,
			Name:    profile.Name,
			Picture: profile.Picture,
			Role:    models.RolePatient,
		}
		if err := h.db.Create(&user).Error; err != nil {
			httperr.Internal(c, "failed_to_create_user", "Session processing failed.")
			return
		}
	} else if err != nil {
		httperr.Internal(c, "internal_error", "Session processing failed.")
		return
	}

	if err := h.sessions.Create(c.Request.Context(), user.ID, profile.SessionToken); err != nil {
		httperr.Internal(c, "failed_to_create_session", "Session processing failed.")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(
		middleware.SessionCookie,
		profile.SessionToken,
		int(session.TTL.Seconds()),
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{"user": user, "success": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", "Authentication required.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.MustGet(middleware.ContextSessionToken).(string)

	if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
		httperr.Internal(c, "failed_to_delete_session", "Logout failed.")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

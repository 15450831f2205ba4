package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medconnect/telemed-api/internal/session"
)

const (
	ContextUserID       = "userID"
	ContextSessionToken = "sessionToken"

	SessionCookie = "session_token"
)

// tokenFromRequest checks the session cookie first, then the Authorization
// header, matching what the web client sends.
func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}

	return ""
}

func AuthMiddleware(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_session_token"})
			return
		}

		userID, err := sessions.Lookup(c.Request.Context(), token)
		if err == session.ErrNotFound {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_session"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session_lookup_failed"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextSessionToken, token)

		c.Next()
	}
}

package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloverwhale/cafe-and-wifi/store"
)

// SessionCookie carries the signed session token.
const SessionCookie = "session"

// AdminUserID is the authorization policy: the first registered user is
// the one and only admin.
const AdminUserID = 1

// RequestLogger tags every request with a uuid and logs it on the way
// out.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		start := time.Now()

		c.Next()

		log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
		}).Info("request handled")
	}
}

// RequireSession resolves the current user from the session cookie once
// per request. Unauthenticated requests are redirected to the login
// page.
func RequireSession(secret string, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		userID, err := ValidateSessionToken(cookie, secret)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := users.ByID(userID)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

// AdminOnly rejects everyone but the admin. Must run after
// RequireSession.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if userID.(uint) != AdminUserID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// RequireAPIKey guards the report-closed endpoint with the shared
// secret. The key is checked before the target row's existence.
func RequireAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("api-key") != key {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Sorry, that's not allowed. Make sure you have the correct api_key.",
			})
			return
		}
		c.Next()
	}
}

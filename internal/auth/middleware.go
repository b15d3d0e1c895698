package auth

import (
	"context"
	"errors"

	"github.com/codeforge/server/codeforge/sessions"
	"github.com/codeforge/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// SessionResolver is the slice of the session repository the middleware needs
type SessionResolver interface {
	Get(ctx context.Context, id string) (*sessions.Session, error)
}

// resolves the session cookie to a user id and stores it in the request
// context. Requests without a valid session proceed anonymously.
func SessionMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		session, err := resolver.Get(c.Request.Context(), cookie)
		if err != nil {
			if !errors.Is(err, sessions.ErrNotFound) {
				logger.ErrorErr(err, "failed to resolve session")
			}

			c.Next()
			return
		}

		c.Set("user_id", session.UserID)
		c.Set("session_id", session.ID)

		c.Next()
	}
}

// extracts the authenticated user id set by SessionMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	return userID.(string), true
}

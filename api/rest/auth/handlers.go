package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/codeforge/server/codeforge/sessions"
	"github.com/codeforge/server/codeforge/users"
	"github.com/codeforge/server/internal/auth"
	apierrors "github.com/codeforge/server/internal/errors"
	"github.com/codeforge/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

// UserStore is the slice of the user repository these handlers need
type UserStore interface {
	FindOrCreateByGoogle(ctx context.Context, googleID, email, name, avatar string) (*users.User, error)
	FindByID(ctx context.Context, id string) (*users.User, error)
}

// SessionStore is the slice of the session repository these handlers need
type SessionStore interface {
	Create(ctx context.Context, userID string) (*sessions.Session, error)
	Delete(ctx context.Context, id string) error
}

// BeginAuthHandler godoc
// @Summary Start Google sign-in
// @Description Redirects to the Google OAuth consent screen
// @Tags auth
// @Success 302 {string} string "Redirect to Google"
// @Router /auth/google [get]
func BeginAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// gothic reads the provider from the query string
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary Google sign-in callback
// @Description Completes the OAuth flow, upserts the user, creates a
// @Description server-side session, and redirects home with the session cookie set
// @Tags auth
// @Success 302 {string} string "Redirect home"
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /auth/google/callback [get]
func CallbackHandler(userStore UserStore, sessionStore SessionStore, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			apierrors.InternalError(c, "Authentication failed", err)
			return
		}

		// name and avatar refresh on every login
		user, err := userStore.FindOrCreateByGoogle(
			c.Request.Context(),
			gothUser.UserID,
			gothUser.Email,
			gothUser.Name,
			gothUser.AvatarURL,
		)
		if err != nil {
			apierrors.InternalError(c, "Failed to create user", err)
			return
		}

		session, err := sessionStore.Create(c.Request.Context(), user.ID)
		if err != nil {
			apierrors.InternalError(c, "Failed to create session", err)
			return
		}

		auth.SetSessionCookie(c.Writer, session.ID, secureCookies)

		logger.Info("user logged in", "user_id", user.ID)

		c.Redirect(http.StatusFound, "/")
	}
}

// LogoutHandler godoc
// @Summary Log out
// @Description Deletes the server-side session and clears the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func LogoutHandler(sessionStore SessionStore, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie != "" {
			if err := sessionStore.Delete(c.Request.Context(), cookie); err != nil {
				// the cookie is cleared either way, so log and continue
				logger.ErrorErr(err, "failed to delete session on logout")
			}
		}

		auth.ClearSessionCookie(c.Writer, secureCookies)

		c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}

// CurrentUserHandler godoc
// @Summary Get current user
// @Description Reports the session's user, or null when unauthenticated
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Router /api/user [get]
func CurrentUserHandler(userStore UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			c.JSON(http.StatusOK, UserResponse{User: nil, Authenticated: false})
			return
		}

		user, err := userStore.FindByID(c.Request.Context(), userID)

		if errors.Is(err, users.ErrNotFound) {
			// session points at a deleted user; treat as unauthenticated
			c.JSON(http.StatusOK, UserResponse{User: nil, Authenticated: false})
			return
		}

		if err != nil {
			apierrors.InternalError(c, "Failed to fetch user", err)
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user, Authenticated: true})
	}
}

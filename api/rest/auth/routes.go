package auth

import (
	"strings"

	"github.com/codeforge/server/internal/config"
	"github.com/gin-gonic/gin"
)

// registers the OAuth flow at the root and the user endpoint under /api
func RegisterRoutes(router *gin.Engine, api *gin.RouterGroup, userStore UserStore, sessionStore SessionStore, cfg *config.Config) {
	secureCookies := strings.HasPrefix(cfg.BaseURL, "https://")

	router.GET("/auth/google", BeginAuthHandler())
	router.GET("/auth/google/callback", CallbackHandler(userStore, sessionStore, secureCookies))
	router.POST("/auth/logout", LogoutHandler(sessionStore, secureCookies))

	api.GET("/user", CurrentUserHandler(userStore))
}

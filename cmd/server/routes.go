package main

import (
	"github.com/codeforge/server/api/rest/auth"
	"github.com/codeforge/server/api/rest/generate"
	"github.com/codeforge/server/api/rest/generations"
	"github.com/codeforge/server/api/rest/health"
	internalauth "github.com/codeforge/server/internal/auth"
	"github.com/codeforge/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// generation is the expensive path; everything else is a cheap read
const generateRateLimit = "20-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{server.config.FrontendOrigin}
	corsConfig.AllowCredentials = true

	router.Use(cors.New(corsConfig))
	router.Use(internalauth.SessionMiddleware(server.sessionRepo))

	router.GET("/health", health.Handler)

	api := router.Group("/api")

	{
		generate.RegisterRoutes(api, server.generator, server.generationRepo, generateRateLimiter())
		generations.RegisterRoutes(api, server.generationRepo)
	}

	auth.RegisterRoutes(router, api, server.userRepo, server.sessionRepo, server.config)
}

// builds the per-client rate limiter for the generation endpoint
func generateRateLimiter() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(generateRateLimit)
	if err != nil {
		logger.FatalErr(err, "invalid rate limit format")
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}

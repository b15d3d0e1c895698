package main

import (
	"github.com/codeforge/server/codeforge/generations"
	"github.com/codeforge/server/codeforge/sessions"
	"github.com/codeforge/server/codeforge/users"
	"github.com/codeforge/server/internal/config"
	"github.com/codeforge/server/internal/generator"
	"github.com/codeforge/server/internal/storage"
	"github.com/gin-gonic/gin"
)

// Server holds every constructed dependency for the process lifetime
type Server struct {
	backend        *storage.Backend
	config         *config.Config
	router         *gin.Engine
	userRepo       users.Repository
	sessionRepo    sessions.Repository
	generationRepo generations.Repository
	generator      *generator.Service
	cleanupService *sessions.CleanupService
}

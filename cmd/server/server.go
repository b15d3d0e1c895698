package main

import (
	"context"
	"fmt"
	"time"

	"github.com/codeforge/server/codeforge/generations"
	"github.com/codeforge/server/codeforge/sessions"
	"github.com/codeforge/server/codeforge/users"
	"github.com/codeforge/server/internal/config"
	"github.com/codeforge/server/internal/generator"
	"github.com/codeforge/server/internal/logger"
	"github.com/codeforge/server/internal/storage"
	"github.com/gin-gonic/gin"
)

// how often the cleanup service removes expired login sessions
const sessionCleanupInterval = 1 * time.Hour

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage backend: %w", err)
	}

	logger.Info("storage backend ready", "engine", backend.Name())

	// both backends satisfy the same repository contracts; the rest of
	// the server never learns which engine it is talking to
	var (
		userRepo       users.Repository
		sessionRepo    sessions.Repository
		generationRepo generations.Repository
	)

	if backend.Postgres != nil {
		userRepo = users.NewPostgresRepository(backend.Postgres)
		sessionRepo = sessions.NewPostgresRepository(backend.Postgres)
		generationRepo = generations.NewPostgresRepository(backend.Postgres)
	} else {
		userRepo = users.NewSQLiteRepository(backend.SQLite)
		sessionRepo = sessions.NewSQLiteRepository(backend.SQLite)
		generationRepo = generations.NewSQLiteRepository(backend.SQLite)
	}

	generatorService := generator.New(cfg.OpenAIKey, cfg.OpenAIModel)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	cleanupService := sessions.NewCleanupService(sessionRepo, sessionCleanupInterval)

	server := &Server{
		backend:        backend,
		config:         cfg,
		router:         router,
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		generationRepo: generationRepo,
		generator:      generatorService,
		cleanupService: cleanupService,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// releases the storage handle
func (s *Server) Close() {
	s.backend.Close()
}

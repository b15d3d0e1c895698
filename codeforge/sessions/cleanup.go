package sessions

import (
	"context"
	"time"

	"github.com/codeforge/server/internal/logger"
)

// handles automatic removal of expired login sessions
type CleanupService struct {
	repo          Repository
	checkInterval time.Duration
}

// creates a new cleanup service
func NewCleanupService(repo Repository, checkInterval time.Duration) *CleanupService {
	return &CleanupService{
		repo:          repo,
		checkInterval: checkInterval,
	}
}

// begins the cleanup background loop
func (s *CleanupService) Start(ctx context.Context) {
	logger.Info("starting session cleanup service", "check_interval", s.checkInterval)

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("session cleanup service stopped")
			return
		case <-ticker.C:
			s.cleanupExpiredSessions(ctx)
		}
	}
}

// deletes sessions whose expiry has passed
func (s *CleanupService) cleanupExpiredSessions(ctx context.Context) {
	deleted, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		logger.ErrorErr(err, "failed to delete expired sessions")
		return
	}

	if deleted > 0 {
		logger.Info("removed expired sessions", "count", deleted)
	}
}

package generations

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	gens "github.com/codeforge/server/codeforge/generations"
	"github.com/codeforge/server/internal/auth"
	apierrors "github.com/codeforge/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Reader is the slice of the persistence gateway these handlers need
type Reader interface {
	List(ctx context.Context, limit int, userID string) ([]gens.Generation, error)
	Get(ctx context.Context, id string) (*gens.Generation, error)
}

// ListHandler godoc
// @Summary List recent generations
// @Description List recent generations newest-first, scoped to the session user when present
// @Tags generations
// @Produce json
// @Param limit query int false "Maximum entries to return" default(10)
// @Success 200 {array} Summary
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/generations [get]
func ListHandler(repo Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := parseLimit(c.Query("limit"))

		// anonymous callers see the shared recent history
		userID, _ := auth.GetUserID(c)

		records, err := repo.List(c.Request.Context(), limit, userID)
		if err != nil {
			apierrors.InternalError(c, "Failed to fetch generations", err)
			return
		}

		summaries := make([]Summary, 0, len(records))
		for _, record := range records {
			summaries = append(summaries, Summary{
				ID:        record.ID,
				Prompt:    record.Prompt,
				Language:  record.Language,
				Framework: record.Framework,
				CreatedAt: record.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, summaries)
	}
}

// GetHandler godoc
// @Summary Fetch one generation
// @Description Fetch a single generation with its files and explanation
// @Tags generations
// @Produce json
// @Param id path string true "Generation id"
// @Success 200 {object} Detail
// @Failure 404 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/generations/{id} [get]
func GetHandler(repo Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		record, err := repo.Get(c.Request.Context(), id)

		// a missing record is an expected outcome, not an error
		if errors.Is(err, gens.ErrNotFound) {
			apierrors.NotFound(c, "Generation")
			return
		}

		if err != nil {
			apierrors.InternalError(c, "Failed to fetch generation", err)
			return
		}

		c.JSON(http.StatusOK, Detail{
			ID:          record.ID,
			Prompt:      record.Prompt,
			Language:    record.Language,
			Framework:   record.Framework,
			Files:       record.GeneratedCode,
			Explanation: record.Explanation,
			CreatedAt:   record.CreatedAt,
		})
	}
}

// parses the limit query parameter, falling back to the default on junk
func parseLimit(raw string) int {
	if raw == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultLimit
	}

	if limit > maxLimit {
		return maxLimit
	}

	return limit
}

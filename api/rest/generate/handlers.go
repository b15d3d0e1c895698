package generate

import (
	"context"
	"net/http"

	"github.com/codeforge/server/codeforge/generations"
	"github.com/codeforge/server/internal/auth"
	"github.com/codeforge/server/internal/errors"
	"github.com/codeforge/server/internal/generator"
	"github.com/gin-gonic/gin"
)

// CodeGenerator is the slice of the provider adapter this handler needs
type CodeGenerator interface {
	Generate(ctx context.Context, req generator.Request) *generator.Result
}

// GenerationCreator is the slice of the persistence gateway this handler needs
type GenerationCreator interface {
	Create(ctx context.Context, params generations.CreateParams) (*generations.Generation, error)
}

// Handler godoc
// @Summary Generate code
// @Description Generate code from a natural-language prompt. Validation failure
// @Description is the only caller-visible error from the generation step; an
// @Description unavailable provider degrades to a deterministic mock result.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body Request true "Generation request"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/generate [post]
func Handler(gen CodeGenerator, repo GenerationCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// attach the owner when a session is present; anonymous is fine
		userID, _ := auth.GetUserID(c)

		// cannot fail outward: the adapter degrades to a mock on any provider failure
		result := gen.Generate(c.Request.Context(), generator.Request{
			Prompt:    req.Prompt,
			Language:  req.Language,
			Framework: req.Framework,
		})

		files := make(generations.GeneratedFiles, 0, len(result.Files))
		for _, f := range result.Files {
			files = append(files, generations.GeneratedFile(f))
		}

		record, err := repo.Create(c.Request.Context(), generations.CreateParams{
			Prompt:        req.Prompt,
			Language:      req.Language,
			Framework:     req.Framework,
			GeneratedCode: files,
			Explanation:   result.Explanation,
			UserID:        userID,
		})
		if err != nil {
			errors.InternalError(c, "Failed to generate code", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			ID:          record.ID,
			Files:       result.Files,
			Explanation: result.Explanation,
			CreatedAt:   record.CreatedAt,
		})
	}
}

package generate

import (
	"github.com/gin-gonic/gin"
)

// registers the code generation route
func RegisterRoutes(api *gin.RouterGroup, gen CodeGenerator, repo GenerationCreator, middleware ...gin.HandlerFunc) {
	handlers := append(middleware, Handler(gen, repo)) //nolint:gocritic

	api.POST("/generate", handlers...)
}

package generations

import (
	"github.com/gin-gonic/gin"
)

// registers generation history routes
func RegisterRoutes(api *gin.RouterGroup, repo Reader) {
	api.GET("/generations", ListHandler(repo))
	api.GET("/generations/:id", GetHandler(repo))
}

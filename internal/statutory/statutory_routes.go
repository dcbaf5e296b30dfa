package statutory

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	tables := r.Group("/statutory")
	{
		tables.GET("/suggest", handler.Suggest)
	}
}

package deduction

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	settings := r.Group("/deduction-settings")
	{
		settings.POST("", handler.Create)
		settings.GET("/employee/:employeeId", handler.GetAllByEmployee)
		settings.GET("/employee/:employeeId/active", handler.GetActiveByEmployee)
		settings.PUT("/:id", handler.Update)
		settings.POST("/:id/activate", handler.Activate)
		settings.DELETE("/:id", handler.Delete)
	}
}

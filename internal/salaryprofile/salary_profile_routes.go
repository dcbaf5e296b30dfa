package salaryprofile

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	profiles := r.Group("/salary-profiles")
	{
		profiles.POST("", handler.Create)
		profiles.GET("/employee/:employeeId", handler.GetAllByEmployee)
		profiles.GET("/employee/:employeeId/active", handler.GetActiveByEmployee)
		profiles.PUT("/:id", handler.Update)
		profiles.POST("/:id/activate", handler.Activate)
		profiles.DELETE("/:id", handler.Delete)
	}
}

package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	records := r.Group("/attendance")
	{
		records.POST("", handler.Create)
		records.GET("/:id", handler.GetByID)
		records.GET("/employee/:employeeId", handler.GetRange)
		records.PUT("/:id", handler.Update)
		records.POST("/:id/approve", handler.Approve)
		records.POST("/:id/reject", handler.Reject)
		records.DELETE("/:id", handler.Delete)
	}
}

package overtime

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	records := r.Group("/overtime")
	{
		records.POST("", handler.Create)
		records.GET("/:id", handler.GetByID)
		records.GET("/attendance/:attendanceId", handler.GetByAttendance)
		records.PUT("/:id", handler.Update)
		records.POST("/:id/approve", handler.Approve)
		records.POST("/:id/reject", handler.Reject)
		records.DELETE("/:id", handler.Delete)
	}
}

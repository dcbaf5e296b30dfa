package payroll

import (
	"ph-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	records := r.Group("/payroll")
	{
		records.GET("", handler.GetAll)
		records.GET("/:id", handler.GetByID)
		records.GET("/:id/breakdown", handler.GetBreakdown)

		if redisClient != nil {
			records.POST("", middleware.Idempotency(redisClient), handler.Create)
			records.POST("/batch", middleware.Idempotency(redisClient), handler.GenerateBatch)
		} else {
			records.POST("", handler.Create)
			records.POST("/batch", handler.GenerateBatch)
		}

		records.POST("/:id/process", handler.Process)
		records.POST("/:id/approve", handler.Approve)
		records.POST("/:id/mark-paid", handler.MarkAsPaid)
		records.PUT("/:id", handler.Update)
		records.DELETE("/:id", handler.Delete)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maheshathikala/stress-detect/controllers"
	"github.com/maheshathikala/stress-detect/middleware"
)

// SetupRoutes registers the stress detection API. Every route requires an
// authenticated identity; the history view branches on role internally so
// admins and users share the same endpoint.
func SetupRoutes(router *gin.RouterGroup, ct *controllers.StressController) {
	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		protected.POST("/detect-stress", ct.DetectStress())
		protected.GET("/stress-logs", ct.GetStressLogs())
		protected.GET("/stress-trend", ct.GetStressTrend())
	}
}

package routes

import (
	controller "github.com/psalmsin1759/menuja-backend/controllers"
	"github.com/psalmsin1759/menuja-backend/middleware"

	"github.com/gin-gonic/gin"
)

func QrScanRoutes(incomingRoutes *gin.Engine) {
	scans := incomingRoutes.Group("/api/qrcodescans")

	// Scans are recorded by anonymous diners, so the write is public.
	scans.POST("", controller.RecordScan())

	protected := scans.Group("", middleware.Authentication())
	protected.GET("", controller.GetScans())
	protected.GET("/table/:tableId", controller.GetScansByTable())
	protected.DELETE("/:id", controller.DeleteScan())
}

package routes

import (
	controller "github.com/psalmsin1759/menuja-backend/controllers"
	"github.com/psalmsin1759/menuja-backend/middleware"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.Engine) {
	tables := incomingRoutes.Group("/api/tables")
	tables.GET("", controller.GetTables())
	tables.GET("/:id", controller.GetTable())

	protected := tables.Group("", middleware.Authentication())
	protected.POST("", controller.CreateTable())
	protected.PUT("/:id", controller.UpdateTable())
	protected.DELETE("/:id", controller.DeleteTable())
}

package routes

import (
	controller "github.com/psalmsin1759/menuja-backend/controllers"
	"github.com/psalmsin1759/menuja-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CategoryRoutes(incomingRoutes *gin.Engine) {
	categories := incomingRoutes.Group("/api/categories")
	categories.GET("", controller.GetCategories())
	categories.GET("/:id", controller.GetCategory())

	protected := categories.Group("", middleware.Authentication())
	protected.POST("", controller.CreateCategory())
	protected.PUT("/:id", controller.UpdateCategory())
	protected.DELETE("/:id", controller.DeleteCategory())
}

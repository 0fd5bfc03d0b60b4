package routes

import (
	controller "github.com/psalmsin1759/menuja-backend/controllers"
	"github.com/psalmsin1759/menuja-backend/middleware"

	"github.com/gin-gonic/gin"
)

func FoodRoutes(incomingRoutes *gin.Engine) {
	foods := incomingRoutes.Group("/api/foods")
	foods.GET("", controller.GetFoods())
	foods.GET("/:id", controller.GetFood())

	protected := foods.Group("", middleware.Authentication())
	protected.POST("", controller.CreateFood())
	protected.PUT("/:id", controller.UpdateFood())
	protected.DELETE("/:id", controller.DeleteFood())
}

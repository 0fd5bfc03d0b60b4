package routes

import (
	controller "github.com/psalmsin1759/menuja-backend/controllers"
	"github.com/psalmsin1759/menuja-backend/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	orders := incomingRoutes.Group("/api/orders", middleware.Authentication())

	orders.POST("", controller.CreateOrder())
	orders.GET("", controller.GetOrders())

	// Analytics before /:id so the static segments win.
	orders.GET("/analytics/count", controller.GetOrderCount())
	orders.GET("/analytics/revenue", controller.GetTotalRevenue())
	orders.GET("/analytics/most-sold", controller.GetMostSoldFoods())
	orders.GET("/analytics/monthly-revenue", controller.GetMonthlyRevenue())

	orders.GET("/:id", controller.GetOrder())
	orders.PUT("/:id", controller.UpdateOrder())
	orders.DELETE("/:id", controller.DeleteOrder())

	orders.GET("/:id/items", controller.GetOrderDetails())
	orders.POST("/:id/items", controller.AddOrderItem())
	orders.PUT("/items/:detailId", controller.UpdateOrderItem())
	orders.DELETE("/items/:detailId", controller.DeleteOrderItem())
}

package routes

import (
	controller "github.com/psalmsin1759/menuja-backend/controllers"
	"github.com/psalmsin1759/menuja-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentRoutes(incomingRoutes *gin.Engine) {
	payments := incomingRoutes.Group("/api/payments", middleware.Authentication())
	payments.POST("", controller.CreatePayment())
	payments.GET("", controller.GetPayments())
	payments.GET("/:id", controller.GetPayment())
	payments.PUT("/:id", controller.UpdatePayment())
	payments.PUT("/:id/active", controller.TogglePaymentActive())
	payments.DELETE("/:id", controller.DeletePayment())
}

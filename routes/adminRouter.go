package routes

import (
	controller "github.com/psalmsin1759/menuja-backend/controllers"
	"github.com/psalmsin1759/menuja-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(incomingRoutes *gin.Engine) {
	admins := incomingRoutes.Group("/api/admins")
	admins.POST("/signup", controller.SignUp())
	admins.POST("/login", controller.Login())

	protected := admins.Group("", middleware.Authentication())
	protected.GET("", controller.GetAdmins())
	protected.PUT("/:id", controller.UpdateAdmin())
	protected.PUT("/password", controller.ChangePassword())
	protected.DELETE("/:id", controller.DeleteAdmin())
}

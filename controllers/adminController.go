package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/psalmsin1759/menuja-backend/models"
	"github.com/psalmsin1759/menuja-backend/services"

	"github.com/gin-gonic/gin"
)

var adminService = services.NewAdminService(db)

type LoginPack struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordPack struct {
	Old_password string `json:"old_password" validate:"required"`
	New_password string `json:"new_password" validate:"required,min=6"`
}

func SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel() // Ensure context is canceled

		var admin models.Admin
		if err := c.BindJSON(&admin); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(admin); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		created, err := adminService.CreateAdmin(ctx, admin)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var pack LoginPack
		if err := c.BindJSON(&pack); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(pack); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		token, admin, err := adminService.Login(ctx, pack.Email, pack.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
	}
}

func GetAdmins() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		admins, err := adminService.GetAllAdmins(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}

func UpdateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var update services.AdminUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(update); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		admin, err := adminService.UpdateAdmin(ctx, c.Param("id"), update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, admin)
	}
}

// ChangePassword updates the password of the authenticated admin.
func ChangePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var pack ChangePasswordPack
		if err := c.BindJSON(&pack); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(pack); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		adminID := c.GetString("admin_id")
		if err := adminService.ChangePassword(ctx, adminID, pack.Old_password, pack.New_password); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
	}
}

func DeleteAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		admin, err := adminService.DeleteAdmin(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, admin)
	}
}

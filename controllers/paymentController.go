package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/psalmsin1759/menuja-backend/models"
	"github.com/psalmsin1759/menuja-backend/services"

	"github.com/gin-gonic/gin"
)

var paymentService = services.NewPaymentService(db)

type ToggleActivePack struct {
	Active *bool `json:"active" validate:"required"`
}

func CreatePayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel() // Ensure context is canceled

		var payment models.Payment
		if err := c.BindJSON(&payment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(payment); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		created, err := paymentService.CreatePayment(ctx, payment)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func GetPayments() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		payments, err := paymentService.GetAllPayments(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

func GetPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		payment, err := paymentService.GetPaymentByID(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}

func UpdatePayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var update services.PaymentUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		payment, err := paymentService.UpdatePayment(ctx, c.Param("id"), update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}

func DeletePayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		if err := paymentService.DeletePayment(ctx, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "payment deleted successfully"})
	}
}

func TogglePaymentActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var pack ToggleActivePack
		if err := c.BindJSON(&pack); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(pack); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		payment, err := paymentService.ToggleActive(ctx, c.Param("id"), *pack.Active)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}

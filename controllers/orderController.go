package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/psalmsin1759/menuja-backend/models"
	"github.com/psalmsin1759/menuja-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var orderService = services.NewOrderService(db)

// OrderPack is the request body for creating an order with its line items.
type OrderPack struct {
	Order_data  models.Order              `json:"order_data" validate:"required"`
	Order_items []services.OrderItemInput `json:"order_items" validate:"required,min=1,dive"`
}

func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel() // Ensure context is canceled

		var pack OrderPack
		if err := c.BindJSON(&pack); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(pack); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		// Attribute the order to the authenticated admin when none was
		// supplied in the body.
		if pack.Order_data.Admin == nil {
			if adminID, ok := c.Get("admin_id"); ok {
				if oid, err := primitive.ObjectIDFromHex(adminID.(string)); err == nil {
					pack.Order_data.Admin = &oid
				}
			}
		}

		order, details, err := orderService.CreateOrder(ctx, pack.Order_data, pack.Order_items)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order, "details": details})
	}
}

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		allOrders, err := orderService.GetAllOrders(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		order, err := orderService.GetOrderByID(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var update services.OrderUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(update); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		order, err := orderService.UpdateOrder(ctx, c.Param("id"), update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		if err := orderService.DeleteOrder(ctx, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order deleted successfully"})
	}
}

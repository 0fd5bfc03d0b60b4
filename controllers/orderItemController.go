package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AddItemPack is the request body for appending one line item to an order.
type AddItemPack struct {
	Food_id  string   `json:"food_id" validate:"required"`
	Quantity *int     `json:"quantity" validate:"required,min=1"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
}

// UpdateItemPack patches quantity and/or price on a line item.
type UpdateItemPack struct {
	Quantity *int     `json:"quantity" validate:"omitempty,min=1"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}

func AddOrderItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel() // Ensure context is canceled

		var pack AddItemPack
		if err := c.BindJSON(&pack); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(pack); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		detail, err := orderService.AddOrderItem(ctx, c.Param("id"), pack.Food_id, *pack.Quantity, *pack.Price)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, detail)
	}
}

func UpdateOrderItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var pack UpdateItemPack
		if err := c.BindJSON(&pack); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(pack); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		detail, err := orderService.UpdateOrderItem(ctx, c.Param("detailId"), pack.Quantity, pack.Price)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

func DeleteOrderItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		detail, err := orderService.DeleteOrderItem(ctx, c.Param("detailId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

func GetOrderDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		items, err := orderService.GetOrderDetails(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

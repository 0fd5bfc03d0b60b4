package services

import (
	"context"
	"testing"
	"time"

	"github.com/psalmsin1759/menuja-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// insertOrderAt writes an order document directly so the creation
// timestamp can be controlled.
func insertOrderAt(t *testing.T, svc *OrderService, amount float64, createdAt time.Time) {
	t.Helper()

	paymentType := "card"
	order := models.Order{
		Order_id:     uuid.NewString(),
		Payment_type: &paymentType,
		Amount:       &amount,
	}
	order.ID = primitive.NewObjectID()
	order.Created_at = createdAt
	order.Updated_at = createdAt

	_, err := svc.orders.InsertOne(context.Background(), order)
	require.NoError(t, err)
}

// insertFoodSales creates a food document and detail rows summing to the
// given quantities.
func insertFoodSales(t *testing.T, svc *OrderService, name string, quantities ...int) {
	t.Helper()
	ctx := context.Background()

	price := 5.0
	food := models.Food{Name: &name, Price: &price}
	food.ID = primitive.NewObjectID()
	_, err := svc.foods.InsertOne(ctx, food)
	require.NoError(t, err)

	for _, quantity := range quantities {
		q := quantity
		detail := models.OrderDetail{
			Order:    primitive.NewObjectID(),
			Food:     food.ID,
			Quantity: &q,
			Price:    &price,
			Total:    float64(q) * price,
		}
		detail.ID = primitive.NewObjectID()
		_, err := svc.details.InsertOne(ctx, detail)
		require.NoError(t, err)
	}
}

func TestGetOrderCount(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	count, err := svc.GetOrderCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	insertOrderAt(t, svc, 10, time.Now())
	insertOrderAt(t, svc, 20, time.Now())

	count, err = svc.GetOrderCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTotalRevenueEmptyIsZero(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)

	revenue, err := svc.GetTotalRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, revenue)
}

func TestTotalRevenueSumsAmounts(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)

	insertOrderAt(t, svc, 100.50, time.Now())
	insertOrderAt(t, svc, 49.50, time.Now())

	revenue, err := svc.GetTotalRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 150.0, revenue)
}

func TestMostSoldFoods(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)

	insertFoodSales(t, svc, "Burger", 6, 4) // summed quantity 10
	insertFoodSales(t, svc, "Pizza", 7)
	insertFoodSales(t, svc, "Salad", 3)

	top, err := svc.GetMostSoldFoods(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, FoodCount{Food: "Burger", Count: 10}, top[0])
	assert.Equal(t, FoodCount{Food: "Pizza", Count: 7}, top[1])
}

func TestMostSoldFoodsDefaultLimit(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)

	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		insertFoodSales(t, svc, name, 1)
	}

	top, err := svc.GetMostSoldFoods(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, top, 6)
}

func TestMonthlyRevenue(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)

	jan := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC)

	insertOrderAt(t, svc, 100, jan)
	insertOrderAt(t, svc, 50, jan.AddDate(0, 0, 5))
	insertOrderAt(t, svc, 20, mar)

	revenue, err := svc.GetMonthlyRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, revenue, 2)
	assert.Equal(t, MonthRevenue{Month: "Jan", Revenue: 150}, revenue[0])
	assert.Equal(t, MonthRevenue{Month: "Mar", Revenue: 20}, revenue[1])
}

func TestMonthlyRevenueCollapsesYears(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)

	insertOrderAt(t, svc, 30, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	insertOrderAt(t, svc, 70, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

	revenue, err := svc.GetMonthlyRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, revenue, 1)
	assert.Equal(t, MonthRevenue{Month: "Jun", Revenue: 100}, revenue[0])
}

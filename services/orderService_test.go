package services

import (
	"context"
	"errors"
	"testing"

	"github.com/psalmsin1759/menuja-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestOrder() models.Order {
	paymentType := "card"
	amount := 42.50
	return models.Order{
		Order_id:     uuid.NewString(),
		Payment_type: &paymentType,
		Amount:       &amount,
	}
}

func TestCreateOrderComputesTotals(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	input := newTestOrder()
	items := []OrderItemInput{
		{Food_id: primitive.NewObjectID().Hex(), Quantity: intPtr(2), Price: floatPtr(9.5)},
		{Food_id: primitive.NewObjectID().Hex(), Quantity: intPtr(3), Price: floatPtr(4.0)},
	}

	order, details, err := svc.CreateOrder(ctx, input, items)
	require.NoError(t, err)

	assert.Equal(t, input.Order_id, order.Order_id)
	assert.Equal(t, models.PaymentStatusNotPaid, *order.Payment_status)
	assert.Equal(t, models.OrderStatusPending, *order.Order_status)

	require.Len(t, details, 2)
	assert.Equal(t, 19.0, details[0].Total)
	assert.Equal(t, 12.0, details[1].Total)
	for _, detail := range details {
		assert.Equal(t, order.ID, detail.Order)
		assert.Equal(t, float64(*detail.Quantity)**detail.Price, detail.Total)
	}

	stored, err := svc.GetOrderDetails(ctx, order.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)

	_, _, err := svc.CreateOrder(context.Background(), newTestOrder(), nil)
	require.Error(t, err)
}

func TestCreateOrderDuplicateID(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	input := newTestOrder()
	items := []OrderItemInput{
		{Food_id: primitive.NewObjectID().Hex(), Quantity: intPtr(1), Price: floatPtr(5.0)},
	}

	_, _, err := svc.CreateOrder(ctx, input, items)
	require.NoError(t, err)

	second := newTestOrder()
	second.Order_id = input.Order_id
	_, _, err = svc.CreateOrder(ctx, second, items)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))

	count, err := svc.GetOrderCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetOrderByIDInvalidIdentifier(t *testing.T) {
	// Identifier shape is checked before any store access, so no
	// database is needed.
	svc := &OrderService{}

	_, err := svc.GetOrderByID(context.Background(), "not-a-hex-id")
	assert.True(t, errors.Is(err, ErrInvalidID))

	_, err = svc.GetOrderDetails(context.Background(), "12345")
	assert.True(t, errors.Is(err, ErrInvalidID))

	err = svc.DeleteOrder(context.Background(), "")
	assert.True(t, errors.Is(err, ErrInvalidID))

	_, err = svc.AddOrderItem(context.Background(), "bad", primitive.NewObjectID().Hex(), 1, 1)
	assert.True(t, errors.Is(err, ErrInvalidID))

	_, err = svc.UpdateOrderItem(context.Background(), "bad", intPtr(1), nil)
	assert.True(t, errors.Is(err, ErrInvalidID))
}

func TestGetOrderByIDNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)

	_, err := svc.GetOrderByID(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateOrder(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	order, _, err := svc.CreateOrder(ctx, newTestOrder(), []OrderItemInput{
		{Food_id: primitive.NewObjectID().Hex(), Quantity: intPtr(1), Price: floatPtr(5.0)},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateOrder(ctx, order.ID.Hex(), OrderUpdate{
		Payment_status: strPtr(models.PaymentStatusPaid),
		Order_status:   strPtr(models.OrderStatusCompleted),
		Customer_name:  strPtr("Ada"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPaid, *updated.Payment_status)
	assert.Equal(t, models.OrderStatusCompleted, *updated.Order_status)
	assert.Equal(t, "Ada", *updated.Customer_name)
	assert.Equal(t, order.Order_id, updated.Order_id)
	assert.True(t, updated.Updated_at.After(order.Updated_at) || updated.Updated_at.Equal(order.Updated_at))
}

func TestUpdateOrderNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)

	_, err := svc.UpdateOrder(context.Background(), primitive.NewObjectID().Hex(), OrderUpdate{
		Customer_name: strPtr("nobody"),
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteOrderCascades(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	order, _, err := svc.CreateOrder(ctx, newTestOrder(), []OrderItemInput{
		{Food_id: primitive.NewObjectID().Hex(), Quantity: intPtr(2), Price: floatPtr(3.0)},
		{Food_id: primitive.NewObjectID().Hex(), Quantity: intPtr(1), Price: floatPtr(7.0)},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, order.ID.Hex()))

	details, err := svc.GetOrderDetails(ctx, order.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, details)

	_, err = svc.GetOrderByID(ctx, order.ID.Hex())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAddOrderItem(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	order, _, err := svc.CreateOrder(ctx, newTestOrder(), []OrderItemInput{
		{Food_id: primitive.NewObjectID().Hex(), Quantity: intPtr(1), Price: floatPtr(5.0)},
	})
	require.NoError(t, err)

	detail, err := svc.AddOrderItem(ctx, order.ID.Hex(), primitive.NewObjectID().Hex(), 4, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, detail.Total)

	details, err := svc.GetOrderDetails(ctx, order.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, details, 2)
}

func TestUpdateOrderItemRecomputesTotal(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	_, details, err := svc.CreateOrder(ctx, newTestOrder(), []OrderItemInput{
		{Food_id: primitive.NewObjectID().Hex(), Quantity: intPtr(2), Price: floatPtr(6.0)},
	})
	require.NoError(t, err)
	detailID := details[0].ID.Hex()

	// Quantity only: total = new quantity * stored price.
	updated, err := svc.UpdateOrderItem(ctx, detailID, intPtr(5), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, *updated.Quantity)
	assert.Equal(t, 6.0, *updated.Price)
	assert.Equal(t, 30.0, updated.Total)

	// Price only: total = stored quantity * new price.
	updated, err = svc.UpdateOrderItem(ctx, detailID, nil, floatPtr(2.0))
	require.NoError(t, err)
	assert.Equal(t, 5, *updated.Quantity)
	assert.Equal(t, 2.0, *updated.Price)
	assert.Equal(t, 10.0, updated.Total)

	// Both factors at once.
	updated, err = svc.UpdateOrderItem(ctx, detailID, intPtr(3), floatPtr(4.0))
	require.NoError(t, err)
	assert.Equal(t, 12.0, updated.Total)
}

func TestUpdateOrderItemNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)

	_, err := svc.UpdateOrderItem(context.Background(), primitive.NewObjectID().Hex(), intPtr(2), nil)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteOrderItem(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	order, details, err := svc.CreateOrder(ctx, newTestOrder(), []OrderItemInput{
		{Food_id: primitive.NewObjectID().Hex(), Quantity: intPtr(1), Price: floatPtr(5.0)},
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteOrderItem(ctx, details[0].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, details[0].ID, deleted.ID)

	remaining, err := svc.GetOrderDetails(ctx, order.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = svc.DeleteOrderItem(ctx, details[0].ID.Hex())
	assert.True(t, errors.Is(err, ErrNotFound))
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/psalmsin1759/menuja-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService owns the order and order-detail lifecycle.
type OrderService struct {
	orders  *mongo.Collection
	details *mongo.Collection
	foods   *mongo.Collection
}

func NewOrderService(db *mongo.Database) *OrderService {
	return &OrderService{
		orders:  db.Collection("order"),
		details: db.Collection("orderDetail"),
		foods:   db.Collection("food"),
	}
}

// OrderItemInput is one line of an incoming order.
type OrderItemInput struct {
	Food_id  string   `json:"food_id" validate:"required"`
	Quantity *int     `json:"quantity" validate:"required,min=1"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
}

// OrderUpdate carries the fields a caller may patch on an order. The
// order_id is immutable after creation and is deliberately absent.
type OrderUpdate struct {
	Payment_type   *string  `json:"payment_type,omitempty"`
	Amount         *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Table          *string  `json:"table,omitempty"`
	Payment_status *string  `json:"payment_status,omitempty" validate:"omitempty,oneof='paid' 'not paid'"`
	Order_status   *string  `json:"order_status,omitempty" validate:"omitempty,oneof=pending completed cancel"`
	Customer_name  *string  `json:"customer_name,omitempty"`
	Customer_email *string  `json:"customer_email,omitempty" validate:"omitempty,email"`
}

// CreateOrder persists the order record first, then all its line items with
// total = quantity * price. The two writes are separate commits: if the
// detail insert fails after the order is committed, the order remains
// persisted without items.
func (s *OrderService) CreateOrder(ctx context.Context, order models.Order, items []OrderItemInput) (models.Order, []models.OrderDetail, error) {
	if len(items) == 0 {
		return models.Order{}, nil, fmt.Errorf("order must contain at least one item")
	}

	foodIDs := make([]primitive.ObjectID, len(items))
	for i, item := range items {
		foodID, err := primitive.ObjectIDFromHex(item.Food_id)
		if err != nil {
			return models.Order{}, nil, fmt.Errorf("item %d food id: %w", i, ErrInvalidID)
		}
		foodIDs[i] = foodID
	}

	now := time.Now()
	order.ID = primitive.NewObjectID()
	order.Created_at = now
	order.Updated_at = now
	if order.Payment_status == nil {
		status := models.PaymentStatusNotPaid
		order.Payment_status = &status
	}
	if order.Order_status == nil {
		status := models.OrderStatusPending
		order.Order_status = &status
	}

	if _, err := s.orders.InsertOne(ctx, order); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Order{}, nil, fmt.Errorf("order_id %q: %w", order.Order_id, ErrDuplicate)
		}
		return models.Order{}, nil, fmt.Errorf("insert order: %w", err)
	}

	details := make([]models.OrderDetail, len(items))
	toInsert := make([]interface{}, len(items))
	for i, item := range items {
		detail := models.OrderDetail{
			Order:    order.ID,
			Food:     foodIDs[i],
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    float64(*item.Quantity) * *item.Price,
		}
		detail.ID = primitive.NewObjectID()
		detail.Created_at = now
		detail.Updated_at = now
		details[i] = detail
		toInsert[i] = detail
	}

	if _, err := s.details.InsertMany(ctx, toInsert); err != nil {
		return models.Order{}, nil, fmt.Errorf("insert order items: %w", err)
	}

	return order, details, nil
}

// GetAllOrders returns every order newest first, with summary fields of the
// attributing admin joined in.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]bson.M, error) {
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "admin"},
		{Key: "localField", Value: "admin"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "admin_info"},
	}}}
	unwindStage := bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$admin_info"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "admin_info.password", Value: 0},
		{Key: "admin_info.created_at", Value: 0},
		{Key: "admin_info.updated_at", Value: 0},
	}}}

	cursor, err := s.orders.Aggregate(ctx, mongo.Pipeline{sortStage, lookupStage, unwindStage, projectStage})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	var allOrders []bson.M
	if err := cursor.All(ctx, &allOrders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return allOrders, nil
}

// GetOrderByID returns one order with admin summary and its details joined
// with food name and price.
func (s *OrderService) GetOrderByID(ctx context.Context, id string) (bson.M, error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("order id: %w", ErrInvalidID)
	}

	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: orderID}}}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "admin"},
		{Key: "localField", Value: "admin"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "admin_info"},
	}}}
	unwindStage := bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$admin_info"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "admin_info.password", Value: 0},
	}}}

	cursor, err := s.orders.Aggregate(ctx, mongo.Pipeline{matchStage, lookupStage, unwindStage, projectStage})
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	order := results[0]
	details, err := s.GetOrderDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	order["details"] = details
	return order, nil
}

// UpdateOrder applies a partial field merge and refreshes updated_at.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, update OrderUpdate) (models.Order, error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Order{}, fmt.Errorf("order id: %w", ErrInvalidID)
	}

	var updateObj primitive.D
	if update.Payment_type != nil {
		updateObj = append(updateObj, bson.E{Key: "payment_type", Value: update.Payment_type})
	}
	if update.Amount != nil {
		updateObj = append(updateObj, bson.E{Key: "amount", Value: update.Amount})
	}
	if update.Table != nil {
		updateObj = append(updateObj, bson.E{Key: "table", Value: update.Table})
	}
	if update.Payment_status != nil {
		updateObj = append(updateObj, bson.E{Key: "payment_status", Value: update.Payment_status})
	}
	if update.Order_status != nil {
		updateObj = append(updateObj, bson.E{Key: "order_status", Value: update.Order_status})
	}
	if update.Customer_name != nil {
		updateObj = append(updateObj, bson.E{Key: "customer_name", Value: update.Customer_name})
	}
	if update.Customer_email != nil {
		updateObj = append(updateObj, bson.E{Key: "customer_email", Value: update.Customer_email})
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	result, err := s.orders.UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.D{{Key: "$set", Value: updateObj}},
	)
	if err != nil {
		return models.Order{}, fmt.Errorf("update order: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	var order models.Order
	if err := s.orders.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		return models.Order{}, fmt.Errorf("reload order: %w", err)
	}
	return order, nil
}

// DeleteOrder removes the order's line items first, then the order itself.
// The two deletes are separate commits, not a transaction.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("order id: %w", ErrInvalidID)
	}

	if _, err := s.details.DeleteMany(ctx, bson.M{"order": orderID}); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := s.orders.DeleteOne(ctx, bson.M{"_id": orderID}); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// AddOrderItem appends one line item to an existing order. The parent order
// is not checked for existence, only its identifier shape.
func (s *OrderService) AddOrderItem(ctx context.Context, orderID, foodID string, quantity int, price float64) (models.OrderDetail, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return models.OrderDetail{}, fmt.Errorf("order id: %w", ErrInvalidID)
	}
	fid, err := primitive.ObjectIDFromHex(foodID)
	if err != nil {
		return models.OrderDetail{}, fmt.Errorf("food id: %w", ErrInvalidID)
	}

	now := time.Now()
	detail := models.OrderDetail{
		Order:    oid,
		Food:     fid,
		Quantity: &quantity,
		Price:    &price,
		Total:    float64(quantity) * price,
	}
	detail.ID = primitive.NewObjectID()
	detail.Created_at = now
	detail.Updated_at = now

	if _, err := s.details.InsertOne(ctx, detail); err != nil {
		return models.OrderDetail{}, fmt.Errorf("insert order item: %w", err)
	}
	return detail, nil
}

// UpdateOrderItem patches quantity and/or price on a line item and
// recomputes the total. When only one factor is supplied, the stored value
// of the other is read first so the total always reflects both.
func (s *OrderService) UpdateOrderItem(ctx context.Context, detailID string, quantity *int, price *float64) (models.OrderDetail, error) {
	oid, err := primitive.ObjectIDFromHex(detailID)
	if err != nil {
		return models.OrderDetail{}, fmt.Errorf("order item id: %w", ErrInvalidID)
	}

	var updateObj primitive.D

	if quantity != nil && price != nil {
		updateObj = append(updateObj,
			bson.E{Key: "quantity", Value: *quantity},
			bson.E{Key: "price", Value: *price},
			bson.E{Key: "total", Value: float64(*quantity) * *price},
		)
	} else if quantity != nil || price != nil {
		// Read-before-write: merge the missing factor from the stored
		// document. Concurrent single-factor updates can race here.
		var existing models.OrderDetail
		if err := s.details.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
			if err == mongo.ErrNoDocuments {
				return models.OrderDetail{}, fmt.Errorf("order item %s: %w", detailID, ErrNotFound)
			}
			return models.OrderDetail{}, fmt.Errorf("load order item: %w", err)
		}
		if quantity != nil {
			updateObj = append(updateObj,
				bson.E{Key: "quantity", Value: *quantity},
				bson.E{Key: "total", Value: float64(*quantity) * *existing.Price},
			)
		} else {
			updateObj = append(updateObj,
				bson.E{Key: "price", Value: *price},
				bson.E{Key: "total", Value: float64(*existing.Quantity) * *price},
			)
		}
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	var updated models.OrderDetail
	err = s.details.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.D{{Key: "$set", Value: updateObj}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.OrderDetail{}, fmt.Errorf("order item %s: %w", detailID, ErrNotFound)
		}
		return models.OrderDetail{}, fmt.Errorf("update order item: %w", err)
	}
	return updated, nil
}

// DeleteOrderItem removes a single line item and returns it.
func (s *OrderService) DeleteOrderItem(ctx context.Context, detailID string) (models.OrderDetail, error) {
	oid, err := primitive.ObjectIDFromHex(detailID)
	if err != nil {
		return models.OrderDetail{}, fmt.Errorf("order item id: %w", ErrInvalidID)
	}

	var deleted models.OrderDetail
	if err := s.details.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.OrderDetail{}, fmt.Errorf("order item %s: %w", detailID, ErrNotFound)
		}
		return models.OrderDetail{}, fmt.Errorf("delete order item: %w", err)
	}
	return deleted, nil
}

// GetOrderDetails lists the line items of one order with food name and
// price joined in.
func (s *OrderService) GetOrderDetails(ctx context.Context, orderID string) ([]bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, fmt.Errorf("order id: %w", ErrInvalidID)
	}

	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "order", Value: oid}}}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "food"},
		{Key: "localField", Value: "food"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "food_info"},
	}}}
	unwindStage := bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$food_info"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "order", Value: 1},
		{Key: "food", Value: 1},
		{Key: "quantity", Value: 1},
		{Key: "price", Value: 1},
		{Key: "total", Value: 1},
		{Key: "created_at", Value: 1},
		{Key: "updated_at", Value: 1},
		{Key: "food_name", Value: "$food_info.name"},
		{Key: "food_price", Value: "$food_info.price"},
	}}}

	cursor, err := s.details.Aggregate(ctx, mongo.Pipeline{matchStage, lookupStage, unwindStage, projectStage})
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}

	var items []bson.M
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	if items == nil {
		items = []bson.M{}
	}
	return items, nil
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/psalmsin1759/menuja-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentService struct {
	payments *mongo.Collection
}

func NewPaymentService(db *mongo.Database) *PaymentService {
	return &PaymentService{payments: db.Collection("payment")}
}

// PaymentUpdate carries the fields a caller may patch on a payment method.
type PaymentUpdate struct {
	Name       *string `json:"name,omitempty"`
	Pub_key    *string `json:"pub_key,omitempty"`
	Secret_key *string `json:"secret_key,omitempty"`
	Active     *bool   `json:"active,omitempty"`
	Webhook    *string `json:"webhook,omitempty"`
}

// CreatePayment inserts a payment method configuration. Name uniqueness is
// enforced by the index.
func (s *PaymentService) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	name := strings.TrimSpace(*payment.Name)
	payment.Name = &name

	if payment.Active == nil {
		active := true
		payment.Active = &active
	}

	now := time.Now()
	payment.ID = primitive.NewObjectID()
	payment.Created_at = now
	payment.Updated_at = now

	if _, err := s.payments.InsertOne(ctx, payment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Payment{}, fmt.Errorf("payment %q: %w", name, ErrDuplicate)
		}
		return models.Payment{}, fmt.Errorf("insert payment: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) GetAllPayments(ctx context.Context) ([]models.Payment, error) {
	cursor, err := s.payments.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

func (s *PaymentService) GetPaymentByID(ctx context.Context, id string) (models.Payment, error) {
	paymentID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Payment{}, fmt.Errorf("payment id: %w", ErrInvalidID)
	}

	var payment models.Payment
	if err := s.payments.FindOne(ctx, bson.M{"_id": paymentID}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Payment{}, fmt.Errorf("payment %s: %w", id, ErrNotFound)
		}
		return models.Payment{}, fmt.Errorf("find payment: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id string, update PaymentUpdate) (models.Payment, error) {
	paymentID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Payment{}, fmt.Errorf("payment id: %w", ErrInvalidID)
	}

	var updateObj primitive.D
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		updateObj = append(updateObj, bson.E{Key: "name", Value: name})
	}
	if update.Pub_key != nil {
		updateObj = append(updateObj, bson.E{Key: "pub_key", Value: update.Pub_key})
	}
	if update.Secret_key != nil {
		updateObj = append(updateObj, bson.E{Key: "secret_key", Value: update.Secret_key})
	}
	if update.Active != nil {
		updateObj = append(updateObj, bson.E{Key: "active", Value: update.Active})
	}
	if update.Webhook != nil {
		updateObj = append(updateObj, bson.E{Key: "webhook", Value: update.Webhook})
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	var updated models.Payment
	err = s.payments.FindOneAndUpdate(ctx,
		bson.M{"_id": paymentID},
		bson.D{{Key: "$set", Value: updateObj}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Payment{}, fmt.Errorf("payment %s: %w", id, ErrNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Payment{}, fmt.Errorf("payment name taken: %w", ErrDuplicate)
		}
		return models.Payment{}, fmt.Errorf("update payment: %w", err)
	}
	return updated, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id string) error {
	paymentID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("payment id: %w", ErrInvalidID)
	}

	if _, err := s.payments.DeleteOne(ctx, bson.M{"_id": paymentID}); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

// ToggleActive flips a payment method on or off.
func (s *PaymentService) ToggleActive(ctx context.Context, id string, active bool) (models.Payment, error) {
	return s.UpdatePayment(ctx, id, PaymentUpdate{Active: &active})
}

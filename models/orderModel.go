package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	BaseEntity     `bson:",inline"` // Embeded base entity
	Order_id       string              `bson:"order_id" json:"order_id" validate:"required"`
	Payment_type   *string             `bson:"payment_type" json:"payment_type" validate:"required"`
	Amount         *float64            `bson:"amount" json:"amount" validate:"required,gte=0"`
	Table          *string             `bson:"table,omitempty" json:"table,omitempty"`
	Payment_status *string             `bson:"payment_status" json:"payment_status" validate:"omitempty,oneof='paid' 'not paid'"`
	Order_status   *string             `bson:"order_status" json:"order_status" validate:"omitempty,oneof=pending completed cancel"`
	Customer_name  *string             `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	Customer_email *string             `bson:"customer_email,omitempty" json:"customer_email,omitempty" validate:"omitempty,email"`
	Admin          *primitive.ObjectID `bson:"admin,omitempty" json:"admin,omitempty"`
}

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusNotPaid = "not paid"

	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancel    = "cancel"
)

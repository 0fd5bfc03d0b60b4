package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderDetail is one food line within an order. Total is derived and must
// equal Quantity * Price at rest; the service recomputes it on every write
// that touches either factor.
type OrderDetail struct {
	BaseEntity `bson:",inline"`
	Order      primitive.ObjectID `bson:"order" json:"order"`
	Food       primitive.ObjectID `bson:"food" json:"food"`
	Quantity   *int               `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Price      *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Total      float64            `bson:"total" json:"total"`
}

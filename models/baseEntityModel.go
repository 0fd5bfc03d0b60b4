package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BaseEntity struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"` // Use omitempty to skip if not set
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Food struct {
	BaseEntity  `bson:",inline"` // Embeded base entity
	Name        *string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description *string             `bson:"description,omitempty" json:"description,omitempty"`
	Photo       *string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Price       *float64            `bson:"price" json:"price" validate:"required,gte=0"`
	Available   *bool               `bson:"available" json:"available"`
	Feature     *bool               `bson:"feature" json:"feature"`
	Category    *primitive.ObjectID `bson:"category" json:"category" validate:"required"`
}

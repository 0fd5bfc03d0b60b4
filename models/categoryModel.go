package models

type Category struct {
	BaseEntity `bson:",inline"`
	Name       *string `bson:"name" json:"name" validate:"required,min=2,max=100"`
}

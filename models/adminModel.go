package models

type Admin struct {
	BaseEntity `bson:",inline"` // Embeded base entity
	First_name *string          `bson:"first_name" json:"first_name" validate:"required,min=2,max=100"`
	Last_name  *string          `bson:"last_name" json:"last_name" validate:"required,min=2,max=100"`
	Email      *string          `bson:"email" json:"email" validate:"required,email"`
	Phone      *string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Password   *string          `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	Role       string           `bson:"role" json:"role" validate:"omitempty,oneof=owner admin"`
	Is_active  *bool            `bson:"is_active" json:"is_active"`
}

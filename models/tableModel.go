package models

type RestaurantTable struct {
	BaseEntity   `bson:",inline"`
	Name         *string `bson:"name" json:"name" validate:"required"`
	Qr_code_path *string `bson:"qr_code_path,omitempty" json:"qr_code_path,omitempty"`
	Url          *string `bson:"url,omitempty" json:"url,omitempty"`
}

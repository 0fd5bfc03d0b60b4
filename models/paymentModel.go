package models

type Payment struct {
	BaseEntity `bson:",inline"`
	Name       *string `bson:"name" json:"name" validate:"required"`
	Pub_key    *string `bson:"pub_key" json:"pub_key" validate:"required"`
	Secret_key *string `bson:"secret_key" json:"secret_key" validate:"required"`
	Active     *bool   `bson:"active" json:"active"`
	Webhook    *string `bson:"webhook,omitempty" json:"webhook,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QrCodeScan struct {
	BaseEntity    `bson:",inline"`
	Table_id      primitive.ObjectID `bson:"table_id" json:"table_id"`
	Scanned_at    time.Time          `bson:"scanned_at" json:"scanned_at"`
	Scanned_by_ip *string            `bson:"scanned_by_ip,omitempty" json:"scanned_by_ip,omitempty"`
	User_agent    *string            `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
}

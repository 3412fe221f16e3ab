package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Emergency struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type      string             `json:"type" bson:"type"`
	Name      string             `json:"name" bson:"name"`
	Phone     string             `json:"phone" bson:"phone"`
	Email     string             `json:"email" bson:"email"`
	Status    EmergencyStatus    `json:"status" bson:"status"`
	Latitude  float64            `json:"latitude" bson:"latitude"`
	Longitude float64            `json:"longitude" bson:"longitude"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type EmergencyStatus string

const (
	EmergencyStatusPending    EmergencyStatus = "pending"
	EmergencyStatusDispatched EmergencyStatus = "dispatched"
	EmergencyStatusResolved   EmergencyStatus = "resolved"
	EmergencyStatusCancelled  EmergencyStatus = "cancelled"
)

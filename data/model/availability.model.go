package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AvailabilityRecord tracks whether an EMP can take a new call. LastUpdated
// must advance on every write, including writes that do not change the flag;
// assignment fairness orders on it (oldest first).
type AvailabilityRecord struct {
	EmpID       primitive.ObjectID `json:"emp_id" bson:"emp_id"`
	IsAvailable bool               `json:"is_available" bson:"is_available"`
	LastUpdated time.Time          `json:"last_updated" bson:"last_updated"`
}

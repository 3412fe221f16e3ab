package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CallSession is the descriptor handed to a caller once an EMP has been
// reserved. It lives only for the duration of the call and is never persisted.
type CallSession struct {
	EmpID    primitive.ObjectID `json:"emp_id"`
	RoomName string             `json:"room_name"`
	Token    string             `json:"token"`
	IssuedAt time.Time          `json:"issued_at"`
}

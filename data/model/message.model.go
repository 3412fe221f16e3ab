package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is one direct message between two users. Users always holds both
// participants, Sender is one of them.
type Message struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Users     []primitive.ObjectID `json:"users" bson:"users"`
	Sender    primitive.ObjectID   `json:"sender" bson:"sender"`
	Text      string               `json:"text" bson:"text"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
}

// ChatSummary is the per-peer digest returned by the chat list query.
type ChatSummary struct {
	PeerID      primitive.ObjectID `json:"id" bson:"_id"`
	PeerName    string             `json:"name" bson:"name"`
	LastMessage string             `json:"last_message" bson:"last_message"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`
}

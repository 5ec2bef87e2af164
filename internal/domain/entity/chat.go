package entity

import "time"

// ChatMessage is one persisted message from the store chat.
type ChatMessage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserEmail string    `bson:"user_email" json:"user_email"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

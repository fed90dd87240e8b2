package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a submitted contact-form entry.
type Feedback struct {
	ID        uuid.UUID `json:"id" bson:"_id"`
	Firstname string    `json:"firstname" bson:"firstname"`
	Lastname  string    `json:"lastname" bson:"lastname"`
	Email     string    `json:"email" bson:"email"`
	Feedback  string    `json:"feedback" bson:"feedback"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

package models

import "github.com/google/uuid"

// User is a registered account. Password holds the bcrypt hash and is
// never serialized in API responses.
type User struct {
	ID       uuid.UUID `json:"id" bson:"_id"`
	Email    string    `json:"email" bson:"email"`
	Password string    `json:"-" bson:"password"`
	Fullname string    `json:"fullname" bson:"fullname"`
	UserName string    `json:"userName" bson:"user_name"`
}

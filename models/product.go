package models

import "github.com/google/uuid"

// Product is a catalog entry.
type Product struct {
	ID       uuid.UUID `json:"id" bson:"_id"`
	Name     string    `json:"name" bson:"name"`
	FullName string    `json:"fullName" bson:"full_name"`
	Price    float64   `json:"price" bson:"price"`
	Image    string    `json:"image" bson:"image"`
	Category string    `json:"category" bson:"category"`
	Badge    string    `json:"badge,omitempty" bson:"badge,omitempty"`
	Weight   string    `json:"weight" bson:"weight"`
	Stock    int       `json:"stock" bson:"stock"`
}

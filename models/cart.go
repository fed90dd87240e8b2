package models

import "time"

// CartItem is a single line in a user's cart. Price is captured when the
// item is first added and is not re-synced from the catalog afterwards.
type CartItem struct {
	ItemID string  `json:"itemId" bson:"item_id"`
	Qty    int     `json:"qty" bson:"qty"`
	Price  float64 `json:"price" bson:"price"`
}

// Cart holds at most one document per user. Item ids are unique within
// the Items slice; insertion order is preserved for display stability.
type Cart struct {
	UserID    string     `json:"userId" bson:"user_id"`
	Items     []CartItem `json:"items" bson:"items"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// Total returns the cart value (unit price times quantity, summed).
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

package domain

import "time"

// CartLine is one product's quantity entry in the shopping cart. Lines
// live only in memory and disappear when their quantity reaches zero.
type CartLine struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

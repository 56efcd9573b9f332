package entities

import "time"

type ShoppingListEntry struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Quantity           float64   `json:"quantity"`
	Completed          bool      `json:"completed"`
	ProductID          *string   `json:"productId"`
	ShoppingLocationID *string   `json:"shoppingLocationId"`
	CreatedAt          time.Time `json:"createdAt"`
}

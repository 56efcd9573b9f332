package entities

import "time"

type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsFreezer   bool      `json:"isFreezer"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductGroup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type QuantityUnit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NamePlural  string    `json:"namePlural"`
	Description string    `json:"description"`
	IsInteger   bool      `json:"isInteger"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ShoppingLocation is a shop, not a pantry location.
type ShoppingLocation struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

package entities

import "time"

// Item is a pantry inventory row. BestBefore stays a plain date string
// because the frontend submits whatever the date input produced; ProductId
// links the row to a Product when it was stocked through the product form.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	Location   string    `json:"location"`
	BestBefore *string   `json:"bestBefore"`
	ProductID  *string   `json:"productId"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"createdAt"`
}

package entities

import "time"

type Chore struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PeriodDays  float64   `json:"periodDays"`
	CreatedAt   time.Time `json:"createdAt"`
}

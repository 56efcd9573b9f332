package entities

import "time"

// Task has two states, open and completed. CompletedAt is set exactly when
// Completed flips to true and cleared when it flips back.
type Task struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	DueDate     *string    `json:"dueDate"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

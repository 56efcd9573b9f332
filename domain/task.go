package domain

import "encoding/json"

var (
	MessageTaskNameRequired = "Il nome dell'attività è obbligatorio"
	MessageFailedAddTask    = "Impossibile aggiungere l'attività"
	MessageFailedUpdateTask = "Impossibile aggiornare l'attività"
	MessageTaskNotFound     = "Attività non trovata"
)

type (
	CreateTaskRequest struct {
		Name      string          `json:"name" validate:"required"`
		DueDate   json.RawMessage `json:"dueDate"`
		Completed json.RawMessage `json:"completed"`
	}

	UpdateTaskRequest struct {
		Name      json.RawMessage `json:"name"`
		DueDate   json.RawMessage `json:"dueDate"`
		Completed json.RawMessage `json:"completed"`
	}
)

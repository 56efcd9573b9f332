package domain

import "encoding/json"

var (
	MessageChoreNameRequired = "Il nome della faccenda è obbligatorio"
	MessageFailedAddChore    = "Impossibile aggiungere la faccenda"
	MessageFailedUpdateChore = "Impossibile aggiornare la faccenda"
	MessageChoreNotFound     = "Faccenda non trovata"
)

type (
	CreateChoreRequest struct {
		Name        string          `json:"name" validate:"required"`
		Description json.RawMessage `json:"description"`
		PeriodDays  json.RawMessage `json:"periodDays"`
	}

	UpdateChoreRequest struct {
		Name        json.RawMessage `json:"name"`
		Description json.RawMessage `json:"description"`
		PeriodDays  json.RawMessage `json:"periodDays"`
	}
)

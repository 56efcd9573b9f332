package domain

import (
	"encoding/json"
	"errors"

	"PantryOS-Server/entities"
)

var (
	MessageInvalidCulture       = `Parametro "culture" non valido`
	MessageInvalidCurrency      = `Parametro "currency" non valido`
	MessageInvalidTimezone      = `Parametro "timezone" non valido`
	MessageFailedUpdateSettings = "Impossibile aggiornare la configurazione"

	ErrInvalidCulture  = errors.New("invalid culture")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidTimezone = errors.New("invalid timezone")
)

type (
	UpdateSettingsRequest struct {
		Culture  json.RawMessage `json:"culture"`
		Currency json.RawMessage `json:"currency"`
		Timezone json.RawMessage `json:"timezone"`
		LogLevel json.RawMessage `json:"logLevel"`
	}

	// StateResponse is the GET /api/state aggregate.
	StateResponse struct {
		State   *entities.AppState `json:"state"`
		Config  entities.Settings  `json:"config"`
		Summary StateSummary       `json:"summary"`
	}

	// StateSummary holds derived dashboard counts, never persisted.
	StateSummary struct {
		Items        int `json:"items"`
		ShoppingList int `json:"shoppingList"`
		OpenTasks    int `json:"openTasks"`
		Locations    int `json:"locations"`
		Products     int `json:"products"`
	}
)

package domain

import "encoding/json"

var (
	MessageShoppingEntryNameRequired = "Il nome dell'articolo è obbligatorio"
	MessageFailedAddShoppingEntry    = "Impossibile aggiungere l'articolo alla lista"
	MessageFailedUpdateShoppingEntry = "Impossibile aggiornare l'articolo della lista"
	MessageShoppingEntryNotFound     = "Articolo della lista non trovato"
)

type (
	CreateShoppingEntryRequest struct {
		Name               string          `json:"name" validate:"required"`
		Quantity           json.RawMessage `json:"quantity"`
		ProductID          json.RawMessage `json:"productId"`
		ShoppingLocationID json.RawMessage `json:"shoppingLocationId"`
	}

	UpdateShoppingEntryRequest struct {
		Name               json.RawMessage `json:"name"`
		Quantity           json.RawMessage `json:"quantity"`
		Completed          json.RawMessage `json:"completed"`
		ProductID          json.RawMessage `json:"productId"`
		ShoppingLocationID json.RawMessage `json:"shoppingLocationId"`
	}
)

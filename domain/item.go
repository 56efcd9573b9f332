package domain

import "encoding/json"

var (
	MessageItemNameRequired = "Il nome del prodotto è obbligatorio"
	MessageFailedAddItem    = "Impossibile elaborare il prodotto inviato"
	MessageFailedUpdateItem = "Impossibile aggiornare il prodotto"
	MessageItemNotFound     = "Prodotto non trovato"
)

type (
	// CreateItemRequest accepts loosely typed scalars for everything except
	// the required name; the service coerces them with sane fallbacks.
	CreateItemRequest struct {
		Name       string          `json:"name" validate:"required"`
		Quantity   json.RawMessage `json:"quantity"`
		Location   json.RawMessage `json:"location"`
		BestBefore json.RawMessage `json:"bestBefore"`
		ProductID  json.RawMessage `json:"productId"`
		Price      json.RawMessage `json:"price"`
	}

	// UpdateItemRequest patches only the fields present in the body. A nil
	// RawMessage means the field was absent; JSON null counts as present and
	// clears nullable fields.
	UpdateItemRequest struct {
		Name       json.RawMessage `json:"name"`
		Quantity   json.RawMessage `json:"quantity"`
		Location   json.RawMessage `json:"location"`
		BestBefore json.RawMessage `json:"bestBefore"`
		ProductID  json.RawMessage `json:"productId"`
		Price      json.RawMessage `json:"price"`
	}
)

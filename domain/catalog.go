package domain

import "encoding/json"

var (
	MessageLocationNameRequired = "Il nome della location è obbligatorio"
	MessageFailedAddLocation    = "Impossibile aggiungere la location"
	MessageFailedUpdateLocation = "Impossibile aggiornare la location"
	MessageLocationNotFound     = "Location non trovata"

	MessageGroupNameRequired = "Il nome del gruppo è obbligatorio"
	MessageFailedAddGroup    = "Impossibile aggiungere il gruppo"
	MessageFailedUpdateGroup = "Impossibile aggiornare il gruppo"
	MessageGroupNotFound     = "Gruppo non trovato"

	MessageUnitNameRequired = "Il nome dell'unità è obbligatorio"
	MessageFailedAddUnit    = "Impossibile aggiungere l'unità"
	MessageFailedUpdateUnit = "Impossibile aggiornare l'unità"
	MessageUnitNotFound     = "Unità non trovata"

	MessageShopNameRequired = "Il nome del negozio è obbligatorio"
	MessageFailedAddShop    = "Impossibile aggiungere il negozio"
	MessageFailedUpdateShop = "Impossibile aggiornare il negozio"
	MessageShopNotFound     = "Negozio non trovato"
)

type (
	CreateLocationRequest struct {
		Name        string          `json:"name" validate:"required"`
		Description json.RawMessage `json:"description"`
		IsFreezer   json.RawMessage `json:"isFreezer"`
	}

	UpdateLocationRequest struct {
		Name        json.RawMessage `json:"name"`
		Description json.RawMessage `json:"description"`
		IsFreezer   json.RawMessage `json:"isFreezer"`
	}

	CreateProductGroupRequest struct {
		Name        string          `json:"name" validate:"required"`
		Description json.RawMessage `json:"description"`
	}

	UpdateProductGroupRequest struct {
		Name        json.RawMessage `json:"name"`
		Description json.RawMessage `json:"description"`
	}

	CreateQuantityUnitRequest struct {
		Name        string          `json:"name" validate:"required"`
		NamePlural  json.RawMessage `json:"namePlural"`
		Description json.RawMessage `json:"description"`
		IsInteger   json.RawMessage `json:"isInteger"`
	}

	UpdateQuantityUnitRequest struct {
		Name        json.RawMessage `json:"name"`
		NamePlural  json.RawMessage `json:"namePlural"`
		Description json.RawMessage `json:"description"`
		IsInteger   json.RawMessage `json:"isInteger"`
	}

	CreateShoppingLocationRequest struct {
		Name        string          `json:"name" validate:"required"`
		Description json.RawMessage `json:"description"`
	}

	UpdateShoppingLocationRequest struct {
		Name        json.RawMessage `json:"name"`
		Description json.RawMessage `json:"description"`
	}
)

package domain

import (
	"encoding/json"

	"PantryOS-Server/entities"
)

var (
	MessageProductNameRequired = "Il nome del prodotto è obbligatorio"
	MessageFailedAddProduct    = "Impossibile elaborare il prodotto inviato"
	MessageFailedUpdateProduct = "Impossibile aggiornare il prodotto"
	MessageProductNotFound     = "Prodotto non trovato"

	MessageBarcodeRequired  = "Il codice a barre è obbligatorio"
	MessageFailedAddBarcode = "Impossibile aggiungere il codice a barre"
)

type (
	// CreateProductRequest is also the upsert payload: when Name matches an
	// existing product case-insensitively the product is updated in place,
	// and a positive StockQuantity additionally stocks the inventory.
	CreateProductRequest struct {
		Name               string          `json:"name" validate:"required"`
		Barcode            json.RawMessage `json:"barcode"`
		Description        json.RawMessage `json:"description"`
		ProductGroupID     json.RawMessage `json:"productGroupId"`
		QuantityUnitID     json.RawMessage `json:"quantityUnitId"`
		ShoppingLocationID json.RawMessage `json:"shoppingLocationId"`
		MinStockAmount     json.RawMessage `json:"minStockAmount"`

		QuFactorPurchaseToStock   json.RawMessage `json:"quFactorPurchaseToStock"`
		QuFactorPurchaseToStockID json.RawMessage `json:"quFactorPurchaseToStockId"`
		QuFactorStockToConsume    json.RawMessage `json:"quFactorStockToConsume"`
		QuFactorStockToConsumeID  json.RawMessage `json:"quFactorStockToConsumeId"`

		ImageURL          json.RawMessage `json:"imageUrl"`
		ImageSmallURL     json.RawMessage `json:"imageSmallUrl"`
		Brand             json.RawMessage `json:"brand"`
		Categories        json.RawMessage `json:"categories"`
		Ingredients       json.RawMessage `json:"ingredients"`
		Allergens         json.RawMessage `json:"allergens"`
		NutritionGrade    json.RawMessage `json:"nutritionGrade"`
		Energy            json.RawMessage `json:"energy"`
		EnergyUnit        json.RawMessage `json:"energyUnit"`
		Quantity          json.RawMessage `json:"quantity"`
		Countries         json.RawMessage `json:"countries"`
		Labels            json.RawMessage `json:"labels"`
		Packaging         json.RawMessage `json:"packaging"`
		Ecoscore          json.RawMessage `json:"ecoscore"`
		NovaGroup         json.RawMessage `json:"novaGroup"`
		OpenFactsURL      json.RawMessage `json:"openFactsUrl"`
		OpenFactsSource   json.RawMessage `json:"openFactsSource"`
		OpenFactsLanguage json.RawMessage `json:"openFactsLanguage"`

		// Optional inventory side effect.
		StockQuantity json.RawMessage `json:"stockQuantity"`
		Location      json.RawMessage `json:"location"`
		BestBefore    json.RawMessage `json:"bestBefore"`
	}

	UpdateProductRequest struct {
		Name               json.RawMessage `json:"name"`
		Barcode            json.RawMessage `json:"barcode"`
		Description        json.RawMessage `json:"description"`
		ProductGroupID     json.RawMessage `json:"productGroupId"`
		QuantityUnitID     json.RawMessage `json:"quantityUnitId"`
		ShoppingLocationID json.RawMessage `json:"shoppingLocationId"`
		MinStockAmount     json.RawMessage `json:"minStockAmount"`

		QuFactorPurchaseToStock   json.RawMessage `json:"quFactorPurchaseToStock"`
		QuFactorPurchaseToStockID json.RawMessage `json:"quFactorPurchaseToStockId"`
		QuFactorStockToConsume    json.RawMessage `json:"quFactorStockToConsume"`
		QuFactorStockToConsumeID  json.RawMessage `json:"quFactorStockToConsumeId"`

		ImageURL          json.RawMessage `json:"imageUrl"`
		ImageSmallURL     json.RawMessage `json:"imageSmallUrl"`
		Brand             json.RawMessage `json:"brand"`
		Categories        json.RawMessage `json:"categories"`
		Ingredients       json.RawMessage `json:"ingredients"`
		Allergens         json.RawMessage `json:"allergens"`
		NutritionGrade    json.RawMessage `json:"nutritionGrade"`
		Energy            json.RawMessage `json:"energy"`
		EnergyUnit        json.RawMessage `json:"energyUnit"`
		Quantity          json.RawMessage `json:"quantity"`
		Countries         json.RawMessage `json:"countries"`
		Labels            json.RawMessage `json:"labels"`
		Packaging         json.RawMessage `json:"packaging"`
		Ecoscore          json.RawMessage `json:"ecoscore"`
		NovaGroup         json.RawMessage `json:"novaGroup"`
		OpenFactsURL      json.RawMessage `json:"openFactsUrl"`
		OpenFactsSource   json.RawMessage `json:"openFactsSource"`
		OpenFactsLanguage json.RawMessage `json:"openFactsLanguage"`
	}

	CreateBarcodeRequest struct {
		Barcode   string          `json:"barcode" validate:"required"`
		ProductID json.RawMessage `json:"productId"`
	}

	// UpsertProductResponse is the POST /api/products body: the stored
	// product plus whether the request also touched the inventory.
	UpsertProductResponse struct {
		Product          entities.Product `json:"product"`
		AddedToInventory bool             `json:"addedToInventory"`
	}
)

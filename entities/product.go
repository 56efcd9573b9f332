package entities

import "time"

// Product is the catalog entry behind inventory rows. The open-facts block is
// whatever the lookup returned, stored verbatim as nullable strings; the
// group/unit/shop references are ids into the respective collections and are
// not cleaned up when the referenced record is deleted.
type Product struct {
	ID                        string  `json:"id"`
	Name                      string  `json:"name"`
	Barcode                   *string `json:"barcode"`
	Description               string  `json:"description"`
	ProductGroupID            *string `json:"productGroupId"`
	QuantityUnitID            *string `json:"quantityUnitId"`
	ShoppingLocationID        *string `json:"shoppingLocationId"`
	MinStockAmount            float64 `json:"minStockAmount"`
	QuFactorPurchaseToStock   float64 `json:"quFactorPurchaseToStock"`
	QuFactorPurchaseToStockID *string `json:"quFactorPurchaseToStockId"`
	QuFactorStockToConsume    float64 `json:"quFactorStockToConsume"`
	QuFactorStockToConsumeID  *string `json:"quFactorStockToConsumeId"`

	// Open-facts enrichment, all optional.
	ImageURL          *string `json:"imageUrl"`
	ImageSmallURL     *string `json:"imageSmallUrl"`
	Brand             *string `json:"brand"`
	Categories        *string `json:"categories"`
	Ingredients       *string `json:"ingredients"`
	Allergens         *string `json:"allergens"`
	NutritionGrade    *string `json:"nutritionGrade"`
	Energy            *string `json:"energy"`
	EnergyUnit        *string `json:"energyUnit"`
	Quantity          *string `json:"quantity"`
	Countries         *string `json:"countries"`
	Labels            *string `json:"labels"`
	Packaging         *string `json:"packaging"`
	Ecoscore          *string `json:"ecoscore"`
	NovaGroup         *string `json:"novaGroup"`
	OpenFactsURL      *string `json:"openFactsUrl"`
	OpenFactsSource   *string `json:"openFactsSource"`
	OpenFactsLanguage *string `json:"openFactsLanguage"`

	CreatedAt time.Time `json:"createdAt"`
}

type Barcode struct {
	ID        string    `json:"id"`
	Barcode   string    `json:"barcode"`
	ProductID *string   `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

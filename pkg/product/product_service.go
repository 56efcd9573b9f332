package product

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"PantryOS-Server/domain"
	"PantryOS-Server/entities"
	"PantryOS-Server/internal/utils"
	"PantryOS-Server/pkg/store"
)

type (
	ProductService interface {
		GetProducts(ctx context.Context) ([]entities.Product, error)
		UpsertProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.UpsertProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (*entities.Product, error)
		DeleteProduct(ctx context.Context, id string) error

		GetBarcodes(ctx context.Context) ([]entities.Barcode, error)
		AddBarcode(ctx context.Context, req domain.CreateBarcodeRequest) (*entities.Barcode, error)
	}

	productService struct {
		store *store.Store
	}
)

func NewProductService(st *store.Store) ProductService {
	return &productService{store: st}
}

func (s *productService) GetProducts(ctx context.Context) ([]entities.Product, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return state.Products, nil
}

// UpsertProduct creates a product, or updates the existing one whose name
// matches case-insensitively. When the request carries a positive
// stockQuantity it also creates-or-increments the matching inventory item,
// keyed by (name, bestBefore). Both effects run inside one Mutate call so
// they commit together or not at all.
func (s *productService) UpsertProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.UpsertProductResponse, error) {
	name := utils.CleanString(req.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	var response domain.UpsertProductResponse
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		var product *entities.Product
		for i := range state.Products {
			if strings.EqualFold(state.Products[i].Name, name) {
				product = &state.Products[i]
				break
			}
		}

		if product != nil {
			applyProductPatch(product, productPatchFields(req))
		} else {
			created := entities.Product{
				ID:                      uuid.New().String(),
				Name:                    name,
				Barcode:                 utils.NullableString(req.Barcode),
				Description:             utils.TextValue(req.Description, ""),
				ProductGroupID:          utils.NullableString(req.ProductGroupID),
				QuantityUnitID:          utils.NullableString(req.QuantityUnitID),
				ShoppingLocationID:      utils.NullableString(req.ShoppingLocationID),
				MinStockAmount:          utils.NumberValue(req.MinStockAmount, 0),
				QuFactorPurchaseToStock: utils.NumberValue(req.QuFactorPurchaseToStock, 1),
				QuFactorStockToConsume:  utils.NumberValue(req.QuFactorStockToConsume, 1),

				QuFactorPurchaseToStockID: utils.NullableString(req.QuFactorPurchaseToStockID),
				QuFactorStockToConsumeID:  utils.NullableString(req.QuFactorStockToConsumeID),

				ImageURL:          utils.NullableString(req.ImageURL),
				ImageSmallURL:     utils.NullableString(req.ImageSmallURL),
				Brand:             utils.NullableString(req.Brand),
				Categories:        utils.NullableString(req.Categories),
				Ingredients:       utils.NullableString(req.Ingredients),
				Allergens:         utils.NullableString(req.Allergens),
				NutritionGrade:    utils.NullableString(req.NutritionGrade),
				Energy:            utils.NullableString(req.Energy),
				EnergyUnit:        utils.NullableString(req.EnergyUnit),
				Quantity:          utils.NullableString(req.Quantity),
				Countries:         utils.NullableString(req.Countries),
				Labels:            utils.NullableString(req.Labels),
				Packaging:         utils.NullableString(req.Packaging),
				Ecoscore:          utils.NullableString(req.Ecoscore),
				NovaGroup:         utils.NullableString(req.NovaGroup),
				OpenFactsURL:      utils.NullableString(req.OpenFactsURL),
				OpenFactsSource:   utils.NullableString(req.OpenFactsSource),
				OpenFactsLanguage: utils.NullableString(req.OpenFactsLanguage),

				CreatedAt: time.Now().UTC(),
			}
			state.Products = append(state.Products, created)
			product = &state.Products[len(state.Products)-1]
		}

		stockQuantity := utils.NumberValue(req.StockQuantity, 0)
		if stockQuantity > 0 {
			stockItem(state, name, stockQuantity, req, product.ID)
		}

		response = domain.UpsertProductResponse{
			Product:          *product,
			AddedToInventory: stockQuantity > 0,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// stockItem increments the inventory row matching (name, bestBefore) or
// appends a fresh one.
func stockItem(state *entities.AppState, name string, quantity float64, req domain.CreateProductRequest, productID string) {
	bestBefore := utils.NullableString(req.BestBefore)
	for i := range state.Items {
		item := &state.Items[i]
		if !strings.EqualFold(item.Name, name) {
			continue
		}
		if !sameDate(item.BestBefore, bestBefore) {
			continue
		}
		item.Quantity += quantity
		return
	}

	state.Items = append(state.Items, entities.Item{
		ID:         uuid.New().String(),
		Name:       name,
		Quantity:   quantity,
		Location:   utils.TextValue(req.Location, ""),
		BestBefore: bestBefore,
		ProductID:  &productID,
		CreatedAt:  time.Now().UTC(),
	})
}

func sameDate(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (*entities.Product, error) {
	var updated entities.Product
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.Products {
			if state.Products[i].ID != id {
				continue
			}
			applyProductPatch(&state.Products[i], req)
			updated = state.Products[i]
			return nil
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.Products {
			if state.Products[i].ID == id {
				state.Products = append(state.Products[:i], state.Products[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return err
}

func (s *productService) GetBarcodes(ctx context.Context) ([]entities.Barcode, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return state.Barcodes, nil
}

func (s *productService) AddBarcode(ctx context.Context, req domain.CreateBarcodeRequest) (*entities.Barcode, error) {
	code := utils.CleanString(req.Barcode)
	if code == "" {
		return nil, domain.ErrNameRequired
	}

	entry := entities.Barcode{
		ID:        uuid.New().String(),
		Barcode:   code,
		ProductID: utils.NullableString(req.ProductID),
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		state.Barcodes = append(state.Barcodes, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// productPatchFields maps the upsert payload onto the patch shape so the
// in-place update path is shared with PATCH /api/products/:id.
func productPatchFields(req domain.CreateProductRequest) domain.UpdateProductRequest {
	return domain.UpdateProductRequest{
		Barcode:            req.Barcode,
		Description:        req.Description,
		ProductGroupID:     req.ProductGroupID,
		QuantityUnitID:     req.QuantityUnitID,
		ShoppingLocationID: req.ShoppingLocationID,
		MinStockAmount:     req.MinStockAmount,

		QuFactorPurchaseToStock:   req.QuFactorPurchaseToStock,
		QuFactorPurchaseToStockID: req.QuFactorPurchaseToStockID,
		QuFactorStockToConsume:    req.QuFactorStockToConsume,
		QuFactorStockToConsumeID:  req.QuFactorStockToConsumeID,

		ImageURL:          req.ImageURL,
		ImageSmallURL:     req.ImageSmallURL,
		Brand:             req.Brand,
		Categories:        req.Categories,
		Ingredients:       req.Ingredients,
		Allergens:         req.Allergens,
		NutritionGrade:    req.NutritionGrade,
		Energy:            req.Energy,
		EnergyUnit:        req.EnergyUnit,
		Quantity:          req.Quantity,
		Countries:         req.Countries,
		Labels:            req.Labels,
		Packaging:         req.Packaging,
		Ecoscore:          req.Ecoscore,
		NovaGroup:         req.NovaGroup,
		OpenFactsURL:      req.OpenFactsURL,
		OpenFactsSource:   req.OpenFactsSource,
		OpenFactsLanguage: req.OpenFactsLanguage,
	}
}

func applyProductPatch(product *entities.Product, req domain.UpdateProductRequest) {
	if req.Name != nil {
		product.Name = utils.StringValue(req.Name, product.Name)
	}
	if req.Barcode != nil {
		product.Barcode = utils.NullableString(req.Barcode)
	}
	if req.Description != nil {
		product.Description = utils.TextValue(req.Description, product.Description)
	}
	if req.ProductGroupID != nil {
		product.ProductGroupID = utils.NullableString(req.ProductGroupID)
	}
	if req.QuantityUnitID != nil {
		product.QuantityUnitID = utils.NullableString(req.QuantityUnitID)
	}
	if req.ShoppingLocationID != nil {
		product.ShoppingLocationID = utils.NullableString(req.ShoppingLocationID)
	}
	if req.MinStockAmount != nil {
		product.MinStockAmount = utils.NumberValue(req.MinStockAmount, product.MinStockAmount)
	}
	if req.QuFactorPurchaseToStock != nil {
		product.QuFactorPurchaseToStock = utils.NumberValue(req.QuFactorPurchaseToStock, product.QuFactorPurchaseToStock)
	}
	if req.QuFactorPurchaseToStockID != nil {
		product.QuFactorPurchaseToStockID = utils.NullableString(req.QuFactorPurchaseToStockID)
	}
	if req.QuFactorStockToConsume != nil {
		product.QuFactorStockToConsume = utils.NumberValue(req.QuFactorStockToConsume, product.QuFactorStockToConsume)
	}
	if req.QuFactorStockToConsumeID != nil {
		product.QuFactorStockToConsumeID = utils.NullableString(req.QuFactorStockToConsumeID)
	}
	if req.ImageURL != nil {
		product.ImageURL = utils.NullableString(req.ImageURL)
	}
	if req.ImageSmallURL != nil {
		product.ImageSmallURL = utils.NullableString(req.ImageSmallURL)
	}
	if req.Brand != nil {
		product.Brand = utils.NullableString(req.Brand)
	}
	if req.Categories != nil {
		product.Categories = utils.NullableString(req.Categories)
	}
	if req.Ingredients != nil {
		product.Ingredients = utils.NullableString(req.Ingredients)
	}
	if req.Allergens != nil {
		product.Allergens = utils.NullableString(req.Allergens)
	}
	if req.NutritionGrade != nil {
		product.NutritionGrade = utils.NullableString(req.NutritionGrade)
	}
	if req.Energy != nil {
		product.Energy = utils.NullableString(req.Energy)
	}
	if req.EnergyUnit != nil {
		product.EnergyUnit = utils.NullableString(req.EnergyUnit)
	}
	if req.Quantity != nil {
		product.Quantity = utils.NullableString(req.Quantity)
	}
	if req.Countries != nil {
		product.Countries = utils.NullableString(req.Countries)
	}
	if req.Labels != nil {
		product.Labels = utils.NullableString(req.Labels)
	}
	if req.Packaging != nil {
		product.Packaging = utils.NullableString(req.Packaging)
	}
	if req.Ecoscore != nil {
		product.Ecoscore = utils.NullableString(req.Ecoscore)
	}
	if req.NovaGroup != nil {
		product.NovaGroup = utils.NullableString(req.NovaGroup)
	}
	if req.OpenFactsURL != nil {
		product.OpenFactsURL = utils.NullableString(req.OpenFactsURL)
	}
	if req.OpenFactsSource != nil {
		product.OpenFactsSource = utils.NullableString(req.OpenFactsSource)
	}
	if req.OpenFactsLanguage != nil {
		product.OpenFactsLanguage = utils.NullableString(req.OpenFactsLanguage)
	}
}

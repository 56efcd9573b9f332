package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"PantryOS-Server/domain"
	"PantryOS-Server/entities"
	"PantryOS-Server/internal/utils"
	"PantryOS-Server/pkg/store"
)

type (
	// CatalogService manages the four reference collections the product and
	// inventory forms pick from. They share the same simple CRUD shape, so
	// they live behind one service.
	CatalogService interface {
		GetLocations(ctx context.Context) ([]entities.Location, error)
		AddLocation(ctx context.Context, req domain.CreateLocationRequest) (*entities.Location, error)
		UpdateLocation(ctx context.Context, id string, req domain.UpdateLocationRequest) (*entities.Location, error)
		DeleteLocation(ctx context.Context, id string) error

		GetProductGroups(ctx context.Context) ([]entities.ProductGroup, error)
		AddProductGroup(ctx context.Context, req domain.CreateProductGroupRequest) (*entities.ProductGroup, error)
		UpdateProductGroup(ctx context.Context, id string, req domain.UpdateProductGroupRequest) (*entities.ProductGroup, error)
		DeleteProductGroup(ctx context.Context, id string) error

		GetQuantityUnits(ctx context.Context) ([]entities.QuantityUnit, error)
		AddQuantityUnit(ctx context.Context, req domain.CreateQuantityUnitRequest) (*entities.QuantityUnit, error)
		UpdateQuantityUnit(ctx context.Context, id string, req domain.UpdateQuantityUnitRequest) (*entities.QuantityUnit, error)
		DeleteQuantityUnit(ctx context.Context, id string) error

		GetShoppingLocations(ctx context.Context) ([]entities.ShoppingLocation, error)
		AddShoppingLocation(ctx context.Context, req domain.CreateShoppingLocationRequest) (*entities.ShoppingLocation, error)
		UpdateShoppingLocation(ctx context.Context, id string, req domain.UpdateShoppingLocationRequest) (*entities.ShoppingLocation, error)
		DeleteShoppingLocation(ctx context.Context, id string) error
	}

	catalogService struct {
		store *store.Store
	}
)

func NewCatalogService(st *store.Store) CatalogService {
	return &catalogService{store: st}
}

func (s *catalogService) GetLocations(ctx context.Context) ([]entities.Location, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return state.Locations, nil
}

func (s *catalogService) AddLocation(ctx context.Context, req domain.CreateLocationRequest) (*entities.Location, error) {
	name := utils.CleanString(req.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	location := entities.Location{
		ID:          uuid.New().String(),
		Name:        name,
		Description: utils.TextValue(req.Description, ""),
		IsFreezer:   utils.BoolValue(req.IsFreezer),
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		state.Locations = append(state.Locations, location)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *catalogService) UpdateLocation(ctx context.Context, id string, req domain.UpdateLocationRequest) (*entities.Location, error) {
	var updated entities.Location
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.Locations {
			if state.Locations[i].ID != id {
				continue
			}
			location := &state.Locations[i]
			if req.Name != nil {
				location.Name = utils.StringValue(req.Name, location.Name)
			}
			if req.Description != nil {
				location.Description = utils.TextValue(req.Description, location.Description)
			}
			if req.IsFreezer != nil {
				location.IsFreezer = utils.BoolValue(req.IsFreezer)
			}
			updated = *location
			return nil
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *catalogService) DeleteLocation(ctx context.Context, id string) error {
	// Products referencing the location keep their id; dangling references
	// are accepted, not cascaded.
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.Locations {
			if state.Locations[i].ID == id {
				state.Locations = append(state.Locations[:i], state.Locations[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return err
}

func (s *catalogService) GetProductGroups(ctx context.Context) ([]entities.ProductGroup, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return state.ProductGroups, nil
}

func (s *catalogService) AddProductGroup(ctx context.Context, req domain.CreateProductGroupRequest) (*entities.ProductGroup, error) {
	name := utils.CleanString(req.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	group := entities.ProductGroup{
		ID:          uuid.New().String(),
		Name:        name,
		Description: utils.TextValue(req.Description, ""),
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		state.ProductGroups = append(state.ProductGroups, group)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *catalogService) UpdateProductGroup(ctx context.Context, id string, req domain.UpdateProductGroupRequest) (*entities.ProductGroup, error) {
	var updated entities.ProductGroup
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.ProductGroups {
			if state.ProductGroups[i].ID != id {
				continue
			}
			group := &state.ProductGroups[i]
			if req.Name != nil {
				group.Name = utils.StringValue(req.Name, group.Name)
			}
			if req.Description != nil {
				group.Description = utils.TextValue(req.Description, group.Description)
			}
			updated = *group
			return nil
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *catalogService) DeleteProductGroup(ctx context.Context, id string) error {
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.ProductGroups {
			if state.ProductGroups[i].ID == id {
				state.ProductGroups = append(state.ProductGroups[:i], state.ProductGroups[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return err
}

func (s *catalogService) GetQuantityUnits(ctx context.Context) ([]entities.QuantityUnit, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return state.QuantityUnits, nil
}

func (s *catalogService) AddQuantityUnit(ctx context.Context, req domain.CreateQuantityUnitRequest) (*entities.QuantityUnit, error) {
	name := utils.CleanString(req.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	unit := entities.QuantityUnit{
		ID:          uuid.New().String(),
		Name:        name,
		NamePlural:  utils.StringValue(req.NamePlural, name),
		Description: utils.TextValue(req.Description, ""),
		IsInteger:   utils.BoolValue(req.IsInteger),
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		state.QuantityUnits = append(state.QuantityUnits, unit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (s *catalogService) UpdateQuantityUnit(ctx context.Context, id string, req domain.UpdateQuantityUnitRequest) (*entities.QuantityUnit, error) {
	var updated entities.QuantityUnit
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.QuantityUnits {
			if state.QuantityUnits[i].ID != id {
				continue
			}
			unit := &state.QuantityUnits[i]
			if req.Name != nil {
				unit.Name = utils.StringValue(req.Name, unit.Name)
			}
			if req.NamePlural != nil {
				unit.NamePlural = utils.StringValue(req.NamePlural, unit.NamePlural)
			}
			if req.Description != nil {
				unit.Description = utils.TextValue(req.Description, unit.Description)
			}
			if req.IsInteger != nil {
				unit.IsInteger = utils.BoolValue(req.IsInteger)
			}
			updated = *unit
			return nil
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *catalogService) DeleteQuantityUnit(ctx context.Context, id string) error {
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.QuantityUnits {
			if state.QuantityUnits[i].ID == id {
				state.QuantityUnits = append(state.QuantityUnits[:i], state.QuantityUnits[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return err
}

func (s *catalogService) GetShoppingLocations(ctx context.Context) ([]entities.ShoppingLocation, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return state.ShoppingLocations, nil
}

func (s *catalogService) AddShoppingLocation(ctx context.Context, req domain.CreateShoppingLocationRequest) (*entities.ShoppingLocation, error) {
	name := utils.CleanString(req.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	shop := entities.ShoppingLocation{
		ID:          uuid.New().String(),
		Name:        name,
		Description: utils.TextValue(req.Description, ""),
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		state.ShoppingLocations = append(state.ShoppingLocations, shop)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (s *catalogService) UpdateShoppingLocation(ctx context.Context, id string, req domain.UpdateShoppingLocationRequest) (*entities.ShoppingLocation, error) {
	var updated entities.ShoppingLocation
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.ShoppingLocations {
			if state.ShoppingLocations[i].ID != id {
				continue
			}
			shop := &state.ShoppingLocations[i]
			if req.Name != nil {
				shop.Name = utils.StringValue(req.Name, shop.Name)
			}
			if req.Description != nil {
				shop.Description = utils.TextValue(req.Description, shop.Description)
			}
			updated = *shop
			return nil
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *catalogService) DeleteShoppingLocation(ctx context.Context, id string) error {
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.ShoppingLocations {
			if state.ShoppingLocations[i].ID == id {
				state.ShoppingLocations = append(state.ShoppingLocations[:i], state.ShoppingLocations[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return err
}

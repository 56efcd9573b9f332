package inventory

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
	InventoryService interface {
		GetItems(ctx context.Context) ([]entities.Item, error)
		AddItem(ctx context.Context, req domain.CreateItemRequest) (*entities.Item, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) (*entities.Item, error)
		DeleteItem(ctx context.Context, id string) error
	}

	inventoryService struct {
		store *store.Store
	}
)

func NewInventoryService(st *store.Store) InventoryService {
	return &inventoryService{store: st}
}

func (s *inventoryService) GetItems(ctx context.Context) ([]entities.Item, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return state.Items, nil
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.CreateItemRequest) (*entities.Item, error) {
	name := utils.CleanString(req.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	quantity := utils.NumberValue(req.Quantity, 1)
	if quantity <= 0 {
		quantity = 1
	}

	item := entities.Item{
		ID:         uuid.New().String(),
		Name:       name,
		Quantity:   quantity,
		Location:   utils.TextValue(req.Location, ""),
		BestBefore: utils.NullableString(req.BestBefore),
		ProductID:  utils.NullableString(req.ProductID),
		Price:      utils.NumberValue(req.Price, 0),
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		state.Items = append(state.Items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) (*entities.Item, error) {
	var updated entities.Item
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.Items {
			if state.Items[i].ID != id {
				continue
			}
			item := &state.Items[i]
			if req.Name != nil {
				item.Name = utils.StringValue(req.Name, item.Name)
			}
			if req.Quantity != nil {
				if quantity := utils.NumberValue(req.Quantity, item.Quantity); quantity >= 0 {
					item.Quantity = quantity
				}
			}
			if req.Location != nil {
				item.Location = utils.TextValue(req.Location, item.Location)
			}
			if req.BestBefore != nil {
				item.BestBefore = utils.NullableString(req.BestBefore)
			}
			if req.ProductID != nil {
				item.ProductID = utils.NullableString(req.ProductID)
			}
			if req.Price != nil {
				item.Price = utils.NumberValue(req.Price, item.Price)
			}
			updated = *item
			return nil
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.Items {
			if state.Items[i].ID == id {
				state.Items = append(state.Items[:i], state.Items[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return err
}

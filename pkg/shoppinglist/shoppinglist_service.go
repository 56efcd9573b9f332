package shoppinglist

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
	ShoppingListService interface {
		GetEntries(ctx context.Context) ([]entities.ShoppingListEntry, error)
		AddEntry(ctx context.Context, req domain.CreateShoppingEntryRequest) (*entities.ShoppingListEntry, error)
		UpdateEntry(ctx context.Context, id string, req domain.UpdateShoppingEntryRequest) (*entities.ShoppingListEntry, error)
		DeleteEntry(ctx context.Context, id string) error
	}

	shoppingListService struct {
		store *store.Store
	}
)

func NewShoppingListService(st *store.Store) ShoppingListService {
	return &shoppingListService{store: st}
}

func (s *shoppingListService) GetEntries(ctx context.Context) ([]entities.ShoppingListEntry, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return state.ShoppingList, nil
}

func (s *shoppingListService) AddEntry(ctx context.Context, req domain.CreateShoppingEntryRequest) (*entities.ShoppingListEntry, error) {
	name := utils.CleanString(req.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	quantity := utils.NumberValue(req.Quantity, 1)
	if quantity <= 0 {
		quantity = 1
	}

	entry := entities.ShoppingListEntry{
		ID:                 uuid.New().String(),
		Name:               name,
		Quantity:           quantity,
		Completed:          false,
		ProductID:          utils.NullableString(req.ProductID),
		ShoppingLocationID: utils.NullableString(req.ShoppingLocationID),
		CreatedAt:          time.Now().UTC(),
	}

	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		state.ShoppingList = append(state.ShoppingList, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *shoppingListService) UpdateEntry(ctx context.Context, id string, req domain.UpdateShoppingEntryRequest) (*entities.ShoppingListEntry, error) {
	var updated entities.ShoppingListEntry
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.ShoppingList {
			if state.ShoppingList[i].ID != id {
				continue
			}
			entry := &state.ShoppingList[i]
			if req.Name != nil {
				entry.Name = utils.StringValue(req.Name, entry.Name)
			}
			if req.Quantity != nil {
				if quantity := utils.NumberValue(req.Quantity, entry.Quantity); quantity >= 0 {
					entry.Quantity = quantity
				}
			}
			if req.Completed != nil {
				entry.Completed = utils.BoolValue(req.Completed)
			}
			if req.ProductID != nil {
				entry.ProductID = utils.NullableString(req.ProductID)
			}
			if req.ShoppingLocationID != nil {
				entry.ShoppingLocationID = utils.NullableString(req.ShoppingLocationID)
			}
			updated = *entry
			return nil
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *shoppingListService) DeleteEntry(ctx context.Context, id string) error {
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.ShoppingList {
			if state.ShoppingList[i].ID == id {
				state.ShoppingList = append(state.ShoppingList[:i], state.ShoppingList[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return err
}

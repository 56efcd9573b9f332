package chore

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
	ChoreService interface {
		GetChores(ctx context.Context) ([]entities.Chore, error)
		AddChore(ctx context.Context, req domain.CreateChoreRequest) (*entities.Chore, error)
		UpdateChore(ctx context.Context, id string, req domain.UpdateChoreRequest) (*entities.Chore, error)
		DeleteChore(ctx context.Context, id string) error
	}

	choreService struct {
		store *store.Store
	}
)

func NewChoreService(st *store.Store) ChoreService {
	return &choreService{store: st}
}

func (s *choreService) GetChores(ctx context.Context) ([]entities.Chore, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return state.Chores, nil
}

func (s *choreService) AddChore(ctx context.Context, req domain.CreateChoreRequest) (*entities.Chore, error) {
	name := utils.CleanString(req.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	chore := entities.Chore{
		ID:          uuid.New().String(),
		Name:        name,
		Description: utils.TextValue(req.Description, ""),
		PeriodDays:  utils.NumberValue(req.PeriodDays, 0),
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		state.Chores = append(state.Chores, chore)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &chore, nil
}

func (s *choreService) UpdateChore(ctx context.Context, id string, req domain.UpdateChoreRequest) (*entities.Chore, error) {
	var updated entities.Chore
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.Chores {
			if state.Chores[i].ID != id {
				continue
			}
			chore := &state.Chores[i]
			if req.Name != nil {
				chore.Name = utils.StringValue(req.Name, chore.Name)
			}
			if req.Description != nil {
				chore.Description = utils.TextValue(req.Description, chore.Description)
			}
			if req.PeriodDays != nil {
				chore.PeriodDays = utils.NumberValue(req.PeriodDays, chore.PeriodDays)
			}
			updated = *chore
			return nil
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *choreService) DeleteChore(ctx context.Context, id string) error {
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.Chores {
			if state.Chores[i].ID == id {
				state.Chores = append(state.Chores[:i], state.Chores[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return err
}

package overview

import (
	"context"

	"PantryOS-Server/domain"
	"PantryOS-Server/pkg/store"
)

type (
	// OverviewService serves the aggregate document the dashboard boots
	// from: the whole state, the current settings, and derived counts.
	OverviewService interface {
		GetOverview(ctx context.Context) (*domain.StateResponse, error)
	}

	overviewService struct {
		store    *store.Store
		settings *store.SettingsStore
	}
)

func NewOverviewService(st *store.Store, settings *store.SettingsStore) OverviewService {
	return &overviewService{store: st, settings: settings}
}

func (s *overviewService) GetOverview(ctx context.Context) (*domain.StateResponse, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	openTasks := 0
	for _, task := range state.Tasks {
		if !task.Completed {
			openTasks++
		}
	}

	return &domain.StateResponse{
		State:  state,
		Config: s.settings.Get(),
		Summary: domain.StateSummary{
			Items:        len(state.Items),
			ShoppingList: len(state.ShoppingList),
			OpenTasks:    openTasks,
			Locations:    len(state.Locations),
			Products:     len(state.Products),
		},
	}, nil
}

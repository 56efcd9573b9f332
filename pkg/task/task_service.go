package task

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
	TaskService interface {
		GetTasks(ctx context.Context) ([]entities.Task, error)
		AddTask(ctx context.Context, req domain.CreateTaskRequest) (*entities.Task, error)
		UpdateTask(ctx context.Context, id string, req domain.UpdateTaskRequest) (*entities.Task, error)
		DeleteTask(ctx context.Context, id string) error
	}

	taskService struct {
		store *store.Store
	}
)

func NewTaskService(st *store.Store) TaskService {
	return &taskService{store: st}
}

func (s *taskService) GetTasks(ctx context.Context) ([]entities.Task, error) {
	state, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return state.Tasks, nil
}

func (s *taskService) AddTask(ctx context.Context, req domain.CreateTaskRequest) (*entities.Task, error) {
	name := utils.CleanString(req.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	task := entities.Task{
		ID:        uuid.New().String(),
		Name:      name,
		DueDate:   utils.NullableString(req.DueDate),
		Completed: utils.BoolValue(req.Completed),
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		state.Tasks = append(state.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id string, req domain.UpdateTaskRequest) (*entities.Task, error) {
	var updated entities.Task
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.Tasks {
			if state.Tasks[i].ID != id {
				continue
			}
			task := &state.Tasks[i]
			if req.Name != nil {
				task.Name = utils.StringValue(req.Name, task.Name)
			}
			if req.DueDate != nil {
				task.DueDate = utils.NullableString(req.DueDate)
			}
			if req.Completed != nil {
				// The completion transition is the only place CompletedAt
				// is ever touched.
				task.Completed = utils.BoolValue(req.Completed)
				if task.Completed {
					now := time.Now().UTC()
					task.CompletedAt = &now
				} else {
					task.CompletedAt = nil
				}
			}
			updated = *task
			return nil
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	_, err := s.store.Mutate(ctx, func(state *entities.AppState) error {
		for i := range state.Tasks {
			if state.Tasks[i].ID == id {
				state.Tasks = append(state.Tasks[:i], state.Tasks[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return err
}

package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"PantryOS-Server/domain"
	"PantryOS-Server/internal/api/presenters"
	"PantryOS-Server/pkg/task"
)

type (
	TaskHandler interface {
		GetTasks(c *fiber.Ctx) error
		AddTask(c *fiber.Ctx) error
		UpdateTask(c *fiber.Ctx) error
		DeleteTask(c *fiber.Ctx) error
	}

	taskHandler struct {
		taskService task.TaskService
		validator   *validator.Validate
	}
)

func NewTaskHandler(taskService task.TaskService, validator *validator.Validate) TaskHandler {
	return &taskHandler{
		taskService: taskService,
		validator:   validator,
	}
}

func (h *taskHandler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.taskService.GetTasks(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, tasks)
}

func (h *taskHandler) AddTask(c *fiber.Ctx) error {
	req := new(domain.CreateTaskRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTask)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageTaskNameRequired)
	}

	created, err := h.taskService.AddTask(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageTaskNameRequired)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddTask)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, created)
}

func (h *taskHandler) UpdateTask(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateTaskRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTask)
		}
	}

	updated, err := h.taskService.UpdateTask(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageTaskNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateTask)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, updated)
}

func (h *taskHandler) DeleteTask(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.taskService.DeleteTask(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageTaskNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateTask)
	}
	return presenters.NoContentResponse(c)
}

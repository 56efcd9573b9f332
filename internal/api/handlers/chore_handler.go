package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"PantryOS-Server/domain"
	"PantryOS-Server/internal/api/presenters"
	"PantryOS-Server/pkg/chore"
)

type (
	ChoreHandler interface {
		GetChores(c *fiber.Ctx) error
		AddChore(c *fiber.Ctx) error
		UpdateChore(c *fiber.Ctx) error
		DeleteChore(c *fiber.Ctx) error
	}

	choreHandler struct {
		choreService chore.ChoreService
		validator    *validator.Validate
	}
)

func NewChoreHandler(choreService chore.ChoreService, validator *validator.Validate) ChoreHandler {
	return &choreHandler{
		choreService: choreService,
		validator:    validator,
	}
}

func (h *choreHandler) GetChores(c *fiber.Ctx) error {
	chores, err := h.choreService.GetChores(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, chores)
}

func (h *choreHandler) AddChore(c *fiber.Ctx) error {
	req := new(domain.CreateChoreRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddChore)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageChoreNameRequired)
	}

	created, err := h.choreService.AddChore(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageChoreNameRequired)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddChore)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, created)
}

func (h *choreHandler) UpdateChore(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateChoreRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateChore)
		}
	}

	updated, err := h.choreService.UpdateChore(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageChoreNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateChore)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, updated)
}

func (h *choreHandler) DeleteChore(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.choreService.DeleteChore(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageChoreNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateChore)
	}
	return presenters.NoContentResponse(c)
}

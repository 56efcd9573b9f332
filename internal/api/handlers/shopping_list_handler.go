package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"PantryOS-Server/domain"
	"PantryOS-Server/internal/api/presenters"
	"PantryOS-Server/pkg/shoppinglist"
)

type (
	ShoppingListHandler interface {
		GetEntries(c *fiber.Ctx) error
		AddEntry(c *fiber.Ctx) error
		UpdateEntry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
		validator           *validator.Validate
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListService: shoppingListService,
		validator:           validator,
	}
}

func (h *shoppingListHandler) GetEntries(c *fiber.Ctx) error {
	entries, err := h.shoppingListService.GetEntries(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, entries)
}

func (h *shoppingListHandler) AddEntry(c *fiber.Ctx) error {
	req := new(domain.CreateShoppingEntryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingEntry)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageShoppingEntryNameRequired)
	}

	entry, err := h.shoppingListService.AddEntry(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageShoppingEntryNameRequired)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddShoppingEntry)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, entry)
}

func (h *shoppingListHandler) UpdateEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateShoppingEntryRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingEntry)
		}
	}

	entry, err := h.shoppingListService.UpdateEntry(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageShoppingEntryNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateShoppingEntry)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, entry)
}

func (h *shoppingListHandler) DeleteEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.shoppingListService.DeleteEntry(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageShoppingEntryNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateShoppingEntry)
	}
	return presenters.NoContentResponse(c)
}

package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"PantryOS-Server/domain"
	"PantryOS-Server/internal/api/presenters"
	"PantryOS-Server/pkg/inventory"
)

type (
	ItemHandler interface {
		GetItems(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	itemHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewItemHandler(inventoryService inventory.InventoryService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *itemHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.inventoryService.GetItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, items)
}

func (h *itemHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.CreateItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageItemNameRequired)
	}

	item, err := h.inventoryService.AddItem(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageItemNameRequired)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddItem)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, item)
}

func (h *itemHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateItemRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem)
		}
	}

	item, err := h.inventoryService.UpdateItem(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateItem)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, item)
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.inventoryService.DeleteItem(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateItem)
	}
	return presenters.NoContentResponse(c)
}

package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"PantryOS-Server/domain"
	"PantryOS-Server/internal/api/presenters"
	"PantryOS-Server/pkg/catalog"
)

type (
	CatalogHandler interface {
		GetLocations(c *fiber.Ctx) error
		AddLocation(c *fiber.Ctx) error
		UpdateLocation(c *fiber.Ctx) error
		DeleteLocation(c *fiber.Ctx) error

		GetProductGroups(c *fiber.Ctx) error
		AddProductGroup(c *fiber.Ctx) error
		UpdateProductGroup(c *fiber.Ctx) error
		DeleteProductGroup(c *fiber.Ctx) error

		GetQuantityUnits(c *fiber.Ctx) error
		AddQuantityUnit(c *fiber.Ctx) error
		UpdateQuantityUnit(c *fiber.Ctx) error
		DeleteQuantityUnit(c *fiber.Ctx) error

		GetShoppingLocations(c *fiber.Ctx) error
		AddShoppingLocation(c *fiber.Ctx) error
		UpdateShoppingLocation(c *fiber.Ctx) error
		DeleteShoppingLocation(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.catalogService.GetLocations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, locations)
}

func (h *catalogHandler) AddLocation(c *fiber.Ctx) error {
	req := new(domain.CreateLocationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddLocation)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageLocationNameRequired)
	}

	location, err := h.catalogService.AddLocation(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageLocationNameRequired)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddLocation)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, location)
}

func (h *catalogHandler) UpdateLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateLocationRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLocation)
		}
	}

	location, err := h.catalogService.UpdateLocation(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageLocationNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateLocation)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, location)
}

func (h *catalogHandler) DeleteLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.catalogService.DeleteLocation(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageLocationNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateLocation)
	}
	return presenters.NoContentResponse(c)
}

func (h *catalogHandler) GetProductGroups(c *fiber.Ctx) error {
	groups, err := h.catalogService.GetProductGroups(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, groups)
}

func (h *catalogHandler) AddProductGroup(c *fiber.Ctx) error {
	req := new(domain.CreateProductGroupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroup)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageGroupNameRequired)
	}

	group, err := h.catalogService.AddProductGroup(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageGroupNameRequired)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddGroup)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, group)
}

func (h *catalogHandler) UpdateProductGroup(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateProductGroupRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroup)
		}
	}

	group, err := h.catalogService.UpdateProductGroup(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageGroupNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateGroup)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, group)
}

func (h *catalogHandler) DeleteProductGroup(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.catalogService.DeleteProductGroup(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageGroupNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateGroup)
	}
	return presenters.NoContentResponse(c)
}

func (h *catalogHandler) GetQuantityUnits(c *fiber.Ctx) error {
	units, err := h.catalogService.GetQuantityUnits(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, units)
}

func (h *catalogHandler) AddQuantityUnit(c *fiber.Ctx) error {
	req := new(domain.CreateQuantityUnitRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddUnit)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUnitNameRequired)
	}

	unit, err := h.catalogService.AddQuantityUnit(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUnitNameRequired)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddUnit)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, unit)
}

func (h *catalogHandler) UpdateQuantityUnit(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateQuantityUnitRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUnit)
		}
	}

	unit, err := h.catalogService.UpdateQuantityUnit(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageUnitNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateUnit)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, unit)
}

func (h *catalogHandler) DeleteQuantityUnit(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.catalogService.DeleteQuantityUnit(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageUnitNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateUnit)
	}
	return presenters.NoContentResponse(c)
}

func (h *catalogHandler) GetShoppingLocations(c *fiber.Ctx) error {
	shops, err := h.catalogService.GetShoppingLocations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, shops)
}

func (h *catalogHandler) AddShoppingLocation(c *fiber.Ctx) error {
	req := new(domain.CreateShoppingLocationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShop)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageShopNameRequired)
	}

	shop, err := h.catalogService.AddShoppingLocation(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageShopNameRequired)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddShop)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, shop)
}

func (h *catalogHandler) UpdateShoppingLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateShoppingLocationRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShop)
		}
	}

	shop, err := h.catalogService.UpdateShoppingLocation(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageShopNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateShop)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, shop)
}

func (h *catalogHandler) DeleteShoppingLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.catalogService.DeleteShoppingLocation(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageShopNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateShop)
	}
	return presenters.NoContentResponse(c)
}

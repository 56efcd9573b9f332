package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"PantryOS-Server/domain"
	"PantryOS-Server/internal/api/presenters"
	"PantryOS-Server/pkg/settings"
)

type (
	SettingsHandler interface {
		GetSettings(c *fiber.Ctx) error
		UpdateSettings(c *fiber.Ctx) error
	}

	settingsHandler struct {
		settingsService settings.SettingsService
	}
)

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
	}
}

func (h *settingsHandler) GetSettings(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.StatusOK, h.settingsService.Get())
}

func (h *settingsHandler) UpdateSettings(c *fiber.Ctx) error {
	req := new(domain.UpdateSettingsRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
		}
	}

	updated, err := h.settingsService.Update(*req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCulture):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidCulture)
		case errors.Is(err, domain.ErrInvalidCurrency):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidCurrency)
		case errors.Is(err, domain.ErrInvalidTimezone):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidTimezone)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateSettings)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, updated)
}

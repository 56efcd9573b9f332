package handlers

import (
	"github.com/gofiber/fiber/v2"

	"PantryOS-Server/domain"
	"PantryOS-Server/internal/api/presenters"
	"PantryOS-Server/pkg/overview"
)

type (
	StateHandler interface {
		GetState(c *fiber.Ctx) error
		GetHealth(c *fiber.Ctx) error
	}

	stateHandler struct {
		overviewService overview.OverviewService
	}
)

func NewStateHandler(overviewService overview.OverviewService) StateHandler {
	return &stateHandler{
		overviewService: overviewService,
	}
}

func (h *stateHandler) GetState(c *fiber.Ctx) error {
	res, err := h.overviewService.GetOverview(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreFailure)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *stateHandler) GetHealth(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}

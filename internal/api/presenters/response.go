package presenters

import "github.com/gofiber/fiber/v2"

// The API contract is deliberately bare: single records and lists are
// returned as-is, failures carry a single human-readable message.

func SuccessResponse(c *fiber.Ctx, status int, payload interface{}) error {
	return c.Status(status).JSON(payload)
}

func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

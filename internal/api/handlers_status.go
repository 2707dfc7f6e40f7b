package api

import "github.com/gofiber/fiber/v2"

// GetStatus re-runs the connectivity probe so the client always sees a
// fresh verdict, not the result of the startup check.
func (handler *Handler) GetStatus(c *fiber.Ctx) error {
	handler.gateway.TestConnection(c.UserContext())
	return c.JSON(fiber.Map{"status": handler.gateway.Status()})
}

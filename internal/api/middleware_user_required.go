package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) UserRequired(c *fiber.Ctx) error {
	userName, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/welcome", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, userName)
	return c.Next()
}

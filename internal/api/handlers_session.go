package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type startSessionInput struct {
	UserName string `json:"user_name" form:"user_name"`
}

func (handler *Handler) StartSession(c *fiber.Ctx) error {
	input := startSessionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	userName := strings.TrimSpace(input.UserName)
	if userName == "" {
		message := translateMessage(currentMessages(c), "error.user_name_required")
		if acceptsJSON(c) {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		setFlashCookie(c, FlashPayload{UserNameError: message})
		return c.Redirect("/welcome", fiber.StatusSeeOther)
	}

	if err := handler.setUserCookie(c, userName); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to start session")
	}
	return redirectOrJSON(c, "/")
}

func (handler *Handler) ChangeUser(c *fiber.Ctx) error {
	handler.clearUserCookie(c)
	return redirectOrJSON(c, "/welcome")
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)
	return c.Redirect(sanitizeRedirectPath(c.Query("redirect"), "/"), fiber.StatusSeeOther)
}

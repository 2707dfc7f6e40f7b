package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowWelcomePage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	flash := popFlashCookie(c)
	return handler.render(c, "welcome", fiber.Map{
		"UserNameError": flash.UserNameError,
	})
}

func (handler *Handler) ShowRecordsPage(c *fiber.Ctx) error {
	userName, _ := currentUserName(c)

	records, listErr := handler.gateway.List(c.UserContext(), userName)

	data := fiber.Map{
		"Records": records,
		"Status":  handler.gateway.Status(),
	}
	if listErr != nil {
		data["LoadError"] = translateMessage(currentMessages(c), "error.load_failed")
	}
	return handler.render(c, "records", data)
}

func (handler *Handler) ShowRecordFormPage(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	flash := popFlashCookie(c)

	return handler.render(c, "form", fiber.Map{
		"Detailed":    c.Query("mode") == "detailed",
		"DefaultDate": now.Format("2006-01-02"),
		"DefaultTime": now.Format("15:04"),
		"SaveError":   flash.SaveError,
	})
}

package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{}
	for key, value := range data {
		payload[key] = value
	}

	language := currentLanguage(c)
	if language == "" {
		language = handler.i18n.DefaultLanguage()
	}
	messages := currentMessages(c)
	if messages == nil {
		messages = handler.i18n.Messages(language)
	}

	payload["Lang"] = language
	payload["Messages"] = messages
	payload["CSRFToken"] = csrfToken(c)
	if _, ok := payload["Status"]; !ok {
		payload["Status"] = handler.gateway.Status()
	}
	if _, ok := payload["UserName"]; !ok {
		if userName, found := currentUserName(c); found {
			payload["UserName"] = userName
		}
	}
	return payload
}

package api

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/kardia/internal/models"
	"github.com/terraincognita07/kardia/internal/services"
)

func (handler *Handler) GetRecords(c *fiber.Ctx) error {
	userName, _ := currentUserName(c)

	records, err := handler.gateway.List(c.UserContext(), userName)
	response := fiber.Map{
		"records": records,
		"status":  handler.gateway.Status(),
	}
	if err != nil {
		response["stale"] = true
		response["error"] = translateMessage(currentMessages(c), "error.load_failed")
	}
	return c.JSON(response)
}

func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	userName, _ := currentUserName(c)

	draft, err := decodeDraft(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := handler.gateway.Save(c.UserContext(), userName, draft)
	if err != nil {
		return handler.saveError(c, err)
	}

	if acceptsJSON(c) || isJSONBody(c) {
		return c.Status(fiber.StatusCreated).JSON(record)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	userName, _ := currentUserName(c)

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	if err := handler.gateway.Delete(c.UserContext(), userName, id); err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, translateMessage(currentMessages(c), "error.delete_failed"))
	}
	return c.JSON(fiber.Map{"ok": true})
}

// decodeDraft turns a JSON body into a Draft as-is and a form body into a
// Draft of raw string values. Coercion happens later, inside Save.
func decodeDraft(c *fiber.Ctx) (models.Draft, error) {
	if isJSONBody(c) {
		draft := models.Draft{}
		if err := json.Unmarshal(c.Body(), &draft); err != nil {
			return nil, err
		}
		return draft, nil
	}

	draft := models.Draft{}
	c.Request().PostArgs().VisitAll(func(key []byte, value []byte) {
		name := string(key)
		if name == "csrf_token" || name == "mode" {
			return
		}
		draft[name] = string(value)
	})
	return draft, nil
}

func (handler *Handler) saveError(c *fiber.Ctx, err error) error {
	messages := currentMessages(c)

	message := translateMessage(messages, "error.save_failed")
	status := fiber.StatusServiceUnavailable
	switch {
	case errors.Is(err, services.ErrUserNameRequired):
		message = translateMessage(messages, "error.user_name_required")
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrDateRequired), errors.Is(err, services.ErrTimeRequired):
		message = translateMessage(messages, "error.date_time_required")
		status = fiber.StatusBadRequest
	}

	if acceptsJSON(c) || isJSONBody(c) {
		return apiError(c, status, message)
	}

	setFlashCookie(c, FlashPayload{SaveError: message})
	formPath := "/records/new"
	if c.FormValue("mode") == "detailed" {
		formPath += "?mode=detailed"
	}
	return c.Redirect(formPath, fiber.StatusSeeOther)
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/kardia/internal/services"
)

const (
	userCookieName     = services.UserCookieName
	languageCookieName = "kardia_lang"
	flashCookieName    = "kardia_flash"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentUserName(c *fiber.Ctx) (string, bool) {
	userName, ok := c.Locals(contextUserKey).(string)
	return userName, ok && userName != ""
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, _ := c.Locals(contextMessagesKey).(map[string]string)
	return messages
}

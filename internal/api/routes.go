package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/welcome", handler.ShowWelcomePage)
	app.Post("/welcome", handler.StartSession)
	app.Post("/user/change", handler.ChangeUser)

	app.Get("/", handler.UserRequired, handler.ShowRecordsPage)
	app.Get("/records/new", handler.UserRequired, handler.ShowRecordFormPage)
	app.Post("/records", handler.UserRequired, handler.CreateRecord)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.UserRequired)

	api.Get("/records", handler.GetRecords)
	api.Post("/records", handler.CreateRecord)
	api.Delete("/records/:id", handler.DeleteRecord)
	api.Get("/status", handler.GetStatus)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

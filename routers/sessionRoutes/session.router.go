package sessionRoutes

import (
	sessionController "fjao/controllers/session"
	sessionValidator "fjao/validators/session"

	"github.com/gofiber/fiber/v2"
)

// SetupSessionRoutes registers mentoring session routes.
func SetupSessionRoutes(app *fiber.App) {
	app.Post("/sessions", sessionValidator.CreateSession(), sessionController.CreateSession)
	app.Get("/sessions", sessionValidator.SessionList(), sessionController.GetSessionsByStudent)
	app.Get("/sessions/:studentId", sessionValidator.SessionList(), sessionController.GetSessionsByStudent)
}

package applicationRoutes

import (
	applicationController "fjao/controllers/application"
	applicationValidator "fjao/validators/application"

	"github.com/gofiber/fiber/v2"
)

// SetupApplicationRoutes registers college application routes.
func SetupApplicationRoutes(app *fiber.App) {
	app.Post("/applications", applicationValidator.CreateApplication(), applicationController.CreateApplication)
	app.Get("/applications", applicationValidator.ApplicationsByStudent(), applicationController.GetApplicationsByStudent)
	app.Get("/applications/student/:studentId", applicationValidator.ApplicationsByStudent(), applicationController.GetApplicationsByStudent)
}

package testRoutes

import (
	testController "fjao/controllers/test"
	testValidator "fjao/validators/test"

	"github.com/gofiber/fiber/v2"
)

// SetupTestRoutes registers test and test-report routes.
func SetupTestRoutes(app *fiber.App) {
	app.Post("/tests", testValidator.CreateTest(), testController.CreateTest)
	app.Get("/tests", testController.ListTests)
	app.Get("/tests/:id", testValidator.TestID(), testController.GetTestByID)

	app.Post("/testReports", testValidator.CreateReport(), testController.CreateTestReport)
	app.Get("/testReports/by-student/:studentId", testValidator.StudentIDParam(), testController.GetStudentTestAnalytics)
}

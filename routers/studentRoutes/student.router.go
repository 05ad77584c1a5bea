package studentRoutes

import (
	studentController "fjao/controllers/student"
	"fjao/middleware"
	studentValidator "fjao/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes registers student profile routes. Profile updates
// require a bearer token; reads are open like the rest of the API.
func SetupStudentRoutes(app *fiber.App) {
	app.Get("/fetchStudentData", studentValidator.FetchStudent(), studentController.FetchStudentData)
	app.Put("/updateStudentData", middleware.JWTMiddleware, studentValidator.UpdateStudent(), studentController.UpdateStudentData)
}

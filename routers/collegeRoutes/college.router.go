package collegeRoutes

import (
	collegeController "fjao/controllers/college"
	collegeValidator "fjao/validators/college"

	"github.com/gofiber/fiber/v2"
)

// SetupCollegeRoutes registers college CRUD routes. The /fetchCollege
// aliases exist for older frontend builds.
func SetupCollegeRoutes(app *fiber.App) {
	app.Get("/colleges", collegeController.ListColleges)
	app.Get("/colleges/:id", collegeValidator.CollegeID(), collegeController.GetCollegeByID)
	app.Post("/colleges", collegeValidator.CreateCollege(), collegeController.CreateCollege)
	app.Put("/colleges/:id", collegeValidator.CollegeID(), collegeController.UpdateCollege)
	app.Delete("/colleges/:id", collegeValidator.CollegeID(), collegeController.DeleteCollege)

	app.Get("/fetchCollege", collegeController.ListColleges)
	app.Get("/fetchCollege/:id", collegeValidator.CollegeID(), collegeController.GetCollegeByID)
}

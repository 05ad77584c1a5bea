package courseRoutes

import (
	courseController "fjao/controllers/course"
	enrollmentController "fjao/controllers/enrollment"
	courseValidator "fjao/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers course CRUD plus enrollment and
// chapter-progress routes.
func SetupCourseRoutes(app *fiber.App) {
	// Courses
	app.Get("/getCourses", courseController.GetCourses)
	app.Get("/getSpecificCourseData/:id", courseValidator.CourseID(), courseController.GetSpecificCourseData)
	app.Post("/courses", courseValidator.CreateCourse(), courseController.CreateCourse)
	app.Put("/courses/:id", courseValidator.CourseID(), courseController.UpdateCourse)
	app.Delete("/courses/:id", courseValidator.CourseID(), courseController.DeleteCourse)

	// Enrollment
	app.Post("/enrollCourse", courseValidator.EnrollCourse(), enrollmentController.EnrollCourse)
	app.Get("/getEnrolledCourses", courseValidator.StudentIDForEnrollments(), enrollmentController.GetEnrolledCourses)
	app.Get("/getEnrolledCourses/:studentId", courseValidator.StudentIDForEnrollments(), enrollmentController.GetEnrolledCourses)
	app.Get("/getSpecificEnrolledCourseData/:enrollmentId", courseValidator.EnrollmentID(), enrollmentController.GetSpecificEnrolledCourseData)

	// Chapter progress
	app.Put("/updateStudentProgress", courseValidator.UpdateProgress(), enrollmentController.UpdateStudentProgress)
}

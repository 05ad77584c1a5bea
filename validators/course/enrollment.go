package courseValidator

import (
	"fjao/middleware"
	"fjao/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates the enrollment request body.
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID  string `json:"courseId"`
			StudentID string `json:"studentId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == "" || reqData.StudentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId and studentId required!", nil)
		}
		if !models.IsValidObjectID(reqData.CourseID) || !models.IsValidObjectID(reqData.StudentID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ids!", nil)
		}

		c.Locals("courseID", models.ObjectID(reqData.CourseID))
		c.Locals("studentID", models.ObjectID(reqData.StudentID))
		return c.Next()
	}
}

// StudentIDForEnrollments validates the studentId from query or path.
func StudentIDForEnrollments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID := strings.TrimSpace(c.Query("studentId"))
		if studentID == "" {
			studentID = strings.TrimSpace(c.Params("studentId"))
		}
		if studentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "studentId required!", nil)
		}
		if !models.IsValidObjectID(studentID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid studentId!", nil)
		}

		c.Locals("studentID", models.ObjectID(studentID))
		return c.Next()
	}
}

// EnrollmentID validates the :enrollmentId path parameter.
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("enrollmentId"))
		if !models.IsValidObjectID(id) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
		}

		c.Locals("enrollmentID", models.ObjectID(id))
		return c.Next()
	}
}

// ProgressUpdateRequest is the body of PUT /updateStudentProgress. The
// index pointer distinguishes a missing value from an explicit 0.
type ProgressUpdateRequest struct {
	EnrollmentID string `json:"enrollmentId"`
	Action       string `json:"action"`
	Index        *int   `json:"index"`
}

// UpdateProgress validates the progress update body. The action value
// itself is dispatched in the controller.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressUpdateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.EnrollmentID == "" || reqData.Action == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "enrollmentId and action required!", nil)
		}
		if !models.IsValidObjectID(reqData.EnrollmentID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollmentId!", nil)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

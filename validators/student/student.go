package studentValidator

import (
	"fjao/middleware"
	"fjao/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FetchStudent validates the ?id= query parameter.
func FetchStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID := strings.TrimSpace(c.Query("id"))
		if studentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student ID required!", nil)
		}
		if !models.IsValidObjectID(studentID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
		}

		c.Locals("studentID", models.ObjectID(studentID))
		return c.Next()
	}
}

// UpdateStudent validates the profile update body. The id is required;
// everything else is a partial update applied as-is.
func UpdateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID string `json:"id"`

			Name                *string `json:"name"`
			Number              *string `json:"number"`
			Profile             *string `json:"profile"`
			AadharNumber        *string `json:"aadharNumber"`
			PanNumber           *string `json:"panNumber"`
			SchoolName          *string `json:"schoolName"`
			FatherName          *string `json:"fatherName"`
			FatherContactNumber *string `json:"fatherContactNumber"`
			MotherName          *string `json:"motherName"`
			MotherContactNumber *string `json:"motherContactNumber"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student ID required!", nil)
		}
		if !models.IsValidObjectID(reqData.ID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
		}

		c.Locals("validatedStudentUpdate", reqData)
		return c.Next()
	}
}

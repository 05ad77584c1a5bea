package collegeValidator

import (
	"fjao/middleware"
	"fjao/models"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CollegeID validates the :id path parameter.
func CollegeID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("id"))
		if !models.IsValidObjectID(id) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid college ID!", nil)
		}

		c.Locals("collegeID", models.ObjectID(id))
		return c.Next()
	}
}

// CreateCollege validates the college creation payload.
func CreateCollege() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string                                    `json:"name"`
			Address datatypes.JSONMap                         `json:"address"`
			Gallery datatypes.JSONSlice[string]               `json:"gallery"`
			Logo    string                                    `json:"logo"`
			Courses datatypes.JSONSlice[models.CollegeCourse] `json:"courses"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name is required!", nil)
		}

		c.Locals("validatedCollege", reqData)
		return c.Next()
	}
}

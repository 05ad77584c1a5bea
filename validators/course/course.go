package courseValidator

import (
	"fjao/middleware"
	"fjao/models"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CourseID validates the :id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("id"))
		if !models.IsValidObjectID(id) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", models.ObjectID(id))
		return c.Next()
	}
}

// CreateCourse validates the course creation payload.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string                              `json:"name"`
			Description string                              `json:"description"`
			Thumbnail   string                              `json:"thumbnail"`
			University  string                              `json:"university"`
			Chapters    datatypes.JSONSlice[models.Chapter] `json:"chapters"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name is required!", nil)
		}

		for _, chapter := range reqData.Chapters {
			if strings.TrimSpace(chapter.Title) == "" {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Every chapter needs a title!", nil)
			}
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

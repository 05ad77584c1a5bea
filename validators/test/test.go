package testValidator

import (
	"fjao/middleware"
	"fjao/models"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

var validate = validator.New()

// CreateTest validates the test publication payload.
func CreateTest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string                               `json:"name"`
			Description string                               `json:"description"`
			Assignment  datatypes.JSONSlice[models.Question] `json:"assignment"`
			Time        int                                  `json:"time"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" || reqData.Time <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "name and time are required!", nil)
		}

		c.Locals("validatedTest", reqData)
		return c.Next()
	}
}

// TestID validates the :id path parameter.
func TestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("id"))
		if !models.IsValidObjectID(id) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test id!", nil)
		}

		c.Locals("testID", models.ObjectID(id))
		return c.Next()
	}
}

// CreateReportRequest is the test attempt submission. All four numeric
// fields are required; pointers distinguish missing from zero.
type CreateReportRequest struct {
	TestID    string `json:"testID" validate:"required"`
	StudentID string `json:"studentID" validate:"required"`

	TotalMarks       *float64 `json:"totalMarks" validate:"required"`
	TotalMarksScored *float64 `json:"totalMarksScored" validate:"required"`
	TotalTimeGiven   *float64 `json:"totalTimeGiven" validate:"required"`
	TotalTimeTaken   *float64 `json:"totalTimeTaken" validate:"required"`

	Answers datatypes.JSONSlice[models.Answer] `json:"answers"`
}

// CreateReport validates the report submission payload.
func CreateReport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReportRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid or missing value!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		if !models.IsValidObjectID(reqData.TestID) || !models.IsValidObjectID(reqData.StudentID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid testID or studentID!", nil)
		}

		c.Locals("validatedReport", reqData)
		return c.Next()
	}
}

// StudentIDParam validates the :studentId path parameter.
func StudentIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID := strings.TrimSpace(c.Params("studentId"))
		if !models.IsValidObjectID(studentID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
		}

		c.Locals("studentID", models.ObjectID(studentID))
		return c.Next()
	}
}

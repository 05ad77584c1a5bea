package applicationValidator

import (
	"fjao/middleware"
	"fjao/models"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateApplicationRequest is the college application payload. Student
// name and email are required; the rest is optional snapshot data.
type CreateApplicationRequest struct {
	StudentID string `json:"studentId"`
	CollegeID string `json:"collegeId"`

	StudentName   string `json:"studentName" validate:"required"`
	StudentEmail  string `json:"studentEmail" validate:"required,email"`
	StudentNumber string `json:"studentNumber"`

	FatherName string `json:"fatherName"`
	MotherName string `json:"motherName"`

	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`

	CurrentCollege    string   `json:"currentCollege"`
	Cgpa              *float64 `json:"cgpa"`
	LastSemesterMarks *float64 `json:"lastSemesterMarks"`

	Motivation string `json:"motivation"`
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// CreateApplication validates the application payload.
func CreateApplication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateApplicationRequest)

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

		// Optional links must still be well-formed when supplied
		if reqData.StudentID != "" && !models.IsValidObjectID(reqData.StudentID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid studentId!", nil)
		}
		if reqData.CollegeID != "" && !models.IsValidObjectID(reqData.CollegeID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid collegeId!", nil)
		}

		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}

// ApplicationsByStudent validates the studentId plus optional paging.
func ApplicationsByStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID := strings.TrimSpace(c.Query("studentId"))
		if studentID == "" {
			studentID = strings.TrimSpace(c.Params("studentId"))
		}
		if studentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "studentId is required!", nil)
		}
		if !models.IsValidObjectID(studentID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid studentId!", nil)
		}

		page := c.QueryInt("page", 1)
		if page < 1 {
			page = 1
		}
		limit := c.QueryInt("limit", 50)
		if limit < 1 {
			limit = 50
		}
		if limit > 200 {
			limit = 200
		}

		c.Locals("studentID", models.ObjectID(studentID))
		c.Locals("page", page)
		c.Locals("limit", limit)
		return c.Next()
	}
}

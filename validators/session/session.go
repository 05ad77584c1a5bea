package sessionValidator

import (
	"fjao/middleware"
	"fjao/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// parseDate accepts RFC3339 timestamps or bare YYYY-MM-DD dates.
func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CreateSessionRequest is the mentoring session payload.
type CreateSessionRequest struct {
	StudentID   string         `json:"studentId"`
	Title       string         `json:"title"`
	Date        string         `json:"date"`
	StartTime   string         `json:"startTime"`
	EndTime     string         `json:"endTime"`
	Mentor      *models.Mentor `json:"mentor"`
	MeetingLink string         `json:"meetingLink"`
	Status      string         `json:"status"`
	Notes       string         `json:"notes"`

	ParsedDate time.Time `json:"-"`
}

// CreateSession validates the session creation payload.
func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSessionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.StudentID == "" || strings.TrimSpace(reqData.Title) == "" || reqData.Date == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "studentId, title and date are required!", nil)
		}
		if !models.IsValidObjectID(reqData.StudentID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid studentId!", nil)
		}

		parsed, ok := parseDate(reqData.Date)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date format!", nil)
		}
		reqData.ParsedDate = parsed

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}

// SessionList validates the list query: studentId plus optional date
// range and status filters.
func SessionList() fiber.Handler {
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
		c.Locals("studentID", models.ObjectID(studentID))

		if from := c.Query("from"); from != "" {
			parsed, ok := parseDate(from)
			if !ok {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid from date!", nil)
			}
			c.Locals("from", parsed)
		}
		if to := c.Query("to"); to != "" {
			parsed, ok := parseDate(to)
			if !ok {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid to date!", nil)
			}
			c.Locals("to", parsed)
		}
		if status := c.Query("status"); status != "" {
			c.Locals("status", status)
		}

		return c.Next()
	}
}

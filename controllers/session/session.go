package sessionController

import (
	"fjao/database"
	"fjao/middleware"
	"fjao/models"
	sessionValidator "fjao/validators/session"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateSession schedules a mentoring session for a student.
func CreateSession(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSession").(*sessionValidator.CreateSessionRequest)

	status := reqData.Status
	if status == "" {
		status = "scheduled"
	}

	session := models.Session{
		StudentID: models.ObjectID(reqData.StudentID),
		Title:     reqData.Title,
		Date:      reqData.ParsedDate,
		StartTime: reqData.StartTime,
		EndTime:   reqData.EndTime,

		Mentor:      reqData.Mentor,
		MeetingLink: reqData.MeetingLink,
		Status:      status,
		Notes:       reqData.Notes,
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session created", session)
}

// GetSessionsByStudent lists a student's sessions, optionally filtered
// by an inclusive date range and a status.
func GetSessionsByStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(models.ObjectID)

	query := database.Database.Db.Where("student_id = ?", studentID)

	if from, ok := c.Locals("from").(time.Time); ok {
		query = query.Where("date >= ?", from)
	}
	if to, ok := c.Locals("to").(time.Time); ok {
		// extend to end of day so a bare date stays inclusive
		endOfDay := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999000000, to.Location())
		query = query.Where("date <= ?", endOfDay)
	}
	if status, ok := c.Locals("status").(string); ok {
		query = query.Where("status = ?", status)
	}

	var sessions []models.Session
	if err := query.Order("date asc, start_time asc").Find(&sessions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sessions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", sessions)
}

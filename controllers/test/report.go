package testController

import (
	"errors"
	"fjao/config"
	"fjao/database"
	"fjao/middleware"
	"fjao/models"
	testValidator "fjao/validators/test"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateTestReport stores one scored attempt. The answers' correctness
// flags come from the client and are stored as-is, not re-verified
// against the test's answer key.
func CreateTestReport(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReport").(*testValidator.CreateReportRequest)

	db := database.Database.Db

	// The referenced test must exist before anything is written
	var test models.Test
	if err := db.Where("id = ?", reqData.TestID).First(&test).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save report!", nil)
	}

	report := models.TestReport{
		TestID:    models.ObjectID(reqData.TestID),
		StudentID: models.ObjectID(reqData.StudentID),

		TotalMarks:       *reqData.TotalMarks,
		TotalMarksScored: *reqData.TotalMarksScored,
		TotalTimeGiven:   *reqData.TotalTimeGiven,
		TotalTimeTaken:   *reqData.TotalTimeTaken,

		Answers: reqData.Answers,
	}

	if err := db.Create(&report).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save report!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Report saved", report)
}

// GetStudentTestAnalytics returns a student's full report history plus
// the summary fold over it.
func GetStudentTestAnalytics(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(models.ObjectID)

	var reports []models.TestReport
	if err := database.Database.Db.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reports!", nil)
	}

	summary := Summarize(reports, config.AppConfig.PassPercent)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
		"summary": summary,
		"reports": reports,
	})
}

package applicationController

import (
	"fjao/database"
	"fjao/middleware"
	"fjao/models"
	applicationValidator "fjao/validators/application"

	"github.com/gofiber/fiber/v2"
)

// CreateApplication stores a college application with a denormalized
// snapshot of the student's details.
func CreateApplication(c *fiber.Ctx) error {
	reqData := c.Locals("validatedApplication").(*applicationValidator.CreateApplicationRequest)

	status := reqData.Status
	if status == "" {
		status = "submitted"
	}

	application := models.CollegeApplication{
		StudentID: models.ObjectID(reqData.StudentID),
		CollegeID: models.ObjectID(reqData.CollegeID),

		StudentName:   reqData.StudentName,
		StudentEmail:  reqData.StudentEmail,
		StudentNumber: reqData.StudentNumber,

		FatherName: reqData.FatherName,
		MotherName: reqData.MotherName,

		City:    reqData.City,
		State:   reqData.State,
		Country: reqData.Country,

		CurrentCollege:    reqData.CurrentCollege,
		Cgpa:              reqData.Cgpa,
		LastSemesterMarks: reqData.LastSemesterMarks,

		Motivation: reqData.Motivation,
		Status:     status,
		AdminNotes: reqData.AdminNotes,
	}

	if err := database.Database.Db.Create(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application created", application)
}

// GetApplicationsByStudent lists a student's applications with paging.
func GetApplicationsByStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(models.ObjectID)
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.CollegeApplication{}).Where("student_id = ?", studentID)

	var total int64
	db.Count(&total)

	var applications []models.CollegeApplication
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", fiber.Map{
		"applications": applications,
		"meta": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

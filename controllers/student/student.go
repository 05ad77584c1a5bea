package studentController

import (
	"errors"
	"fjao/database"
	"fjao/middleware"
	"fjao/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FetchStudentData fetches a student profile by id.
func FetchStudentData(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(models.ObjectID)

	var user models.User
	if err := database.Database.Db.Where("id = ?", studentID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully!", user)
}

// UpdateStudentData applies a partial profile update. Only fields
// present in the request are written; email and password are not
// updatable through this route.
func UpdateStudentData(c *fiber.Ctx) error {
	reqData := c.Locals("validatedStudentUpdate").(*struct {
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

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", reqData.ID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
	}

	updates := map[string]interface{}{}
	setIf := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setIf("name", reqData.Name)
	setIf("number", reqData.Number)
	setIf("profile", reqData.Profile)
	setIf("aadhar_number", reqData.AadharNumber)
	setIf("pan_number", reqData.PanNumber)
	setIf("school_name", reqData.SchoolName)
	setIf("father_name", reqData.FatherName)
	setIf("father_contact_number", reqData.FatherContactNumber)
	setIf("mother_name", reqData.MotherName)
	setIf("mother_contact_number", reqData.MotherContactNumber)

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", user)
}

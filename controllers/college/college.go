package collegeController

import (
	"errors"
	"fjao/database"
	"fjao/middleware"
	"fjao/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListColleges lists colleges, newest first. ?limit= caps the result.
func ListColleges(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	query := database.Database.Db.Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var colleges []models.College
	if err := query.Find(&colleges).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch colleges!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Colleges fetched successfully!", colleges)
}

// GetCollegeByID fetches one college.
func GetCollegeByID(c *fiber.Ctx) error {
	collegeID := c.Locals("collegeID").(models.ObjectID)

	var college models.College
	if err := database.Database.Db.Where("id = ?", collegeID).First(&college).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "College not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch college!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "College fetched successfully!", college)
}

// CreateCollege creates a new college listing.
func CreateCollege(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCollege").(*struct {
		Name    string                                    `json:"name"`
		Address datatypes.JSONMap                         `json:"address"`
		Gallery datatypes.JSONSlice[string]               `json:"gallery"`
		Logo    string                                    `json:"logo"`
		Courses datatypes.JSONSlice[models.CollegeCourse] `json:"courses"`
	})

	college := models.College{
		Name:    reqData.Name,
		Address: reqData.Address,
		Gallery: reqData.Gallery,
		Logo:    reqData.Logo,
		Courses: reqData.Courses,
	}

	if err := database.Database.Db.Create(&college).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create college!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "College created", college)
}

// UpdateCollege applies a full or partial update to a college.
func UpdateCollege(c *fiber.Ctx) error {
	collegeID := c.Locals("collegeID").(models.ObjectID)

	db := database.Database.Db

	var college models.College
	if err := db.Where("id = ?", collegeID).First(&college).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "College not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update college!", nil)
	}

	updates := new(struct {
		Name    *string                                    `json:"name"`
		Address datatypes.JSONMap                          `json:"address"`
		Gallery *datatypes.JSONSlice[string]               `json:"gallery"`
		Logo    *string                                    `json:"logo"`
		Courses *datatypes.JSONSlice[models.CollegeCourse] `json:"courses"`
	})
	if err := c.BodyParser(updates); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if updates.Name != nil {
		college.Name = *updates.Name
	}
	if updates.Address != nil {
		college.Address = updates.Address
	}
	if updates.Gallery != nil {
		college.Gallery = *updates.Gallery
	}
	if updates.Logo != nil {
		college.Logo = *updates.Logo
	}
	if updates.Courses != nil {
		college.Courses = *updates.Courses
	}

	if err := db.Save(&college).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update college!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "College updated", college)
}

// DeleteCollege removes a college listing.
func DeleteCollege(c *fiber.Ctx) error {
	collegeID := c.Locals("collegeID").(models.ObjectID)

	result := database.Database.Db.Where("id = ?", collegeID).Delete(&models.College{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete college!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "College not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "College deleted", nil)
}

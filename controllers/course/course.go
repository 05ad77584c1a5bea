package courseController

import (
	"errors"
	"fjao/database"
	"fjao/middleware"
	"fjao/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetCourses lists all courses, newest first.
func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetSpecificCourseData fetches one course.
func GetSpecificCourseData(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(models.ObjectID)

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// CreateCourse creates a course with its chapter list.
func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*struct {
		Name        string                              `json:"name"`
		Description string                              `json:"description"`
		Thumbnail   string                              `json:"thumbnail"`
		University  string                              `json:"university"`
		Chapters    datatypes.JSONSlice[models.Chapter] `json:"chapters"`
	})

	course := models.Course{
		Name:        reqData.Name,
		Description: reqData.Description,
		Thumbnail:   reqData.Thumbnail,
		University:  reqData.University,
		Chapters:    reqData.Chapters,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created", course)
}

// UpdateCourse applies a full or partial update to a course. Existing
// enrollments keep their snapshot; they are not re-synced.
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(models.ObjectID)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	updates := new(struct {
		Name        *string                              `json:"name"`
		Description *string                              `json:"description"`
		Thumbnail   *string                              `json:"thumbnail"`
		University  *string                              `json:"university"`
		Chapters    *datatypes.JSONSlice[models.Chapter] `json:"chapters"`
	})
	if err := c.BodyParser(updates); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if updates.Name != nil {
		course.Name = *updates.Name
	}
	if updates.Description != nil {
		course.Description = *updates.Description
	}
	if updates.Thumbnail != nil {
		course.Thumbnail = *updates.Thumbnail
	}
	if updates.University != nil {
		course.University = *updates.University
	}
	if updates.Chapters != nil {
		course.Chapters = *updates.Chapters
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated", course)
}

// DeleteCourse removes a course.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(models.ObjectID)

	result := database.Database.Db.Where("id = ?", courseID).Delete(&models.Course{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted", nil)
}

package testController

import (
	"errors"
	"fjao/database"
	"fjao/middleware"
	"fjao/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateTest publishes a new test.
func CreateTest(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTest").(*struct {
		Name        string                               `json:"name"`
		Description string                               `json:"description"`
		Assignment  datatypes.JSONSlice[models.Question] `json:"assignment"`
		Time        int                                  `json:"time"`
	})

	test := models.Test{
		Name:        reqData.Name,
		Description: reqData.Description,
		Assignment:  reqData.Assignment,
		Time:        reqData.Time,
	}

	if err := database.Database.Db.Create(&test).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create test!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Test created!", test)
}

// ListTests lists tests, newest first. ?limit= caps the result.
func ListTests(c *fiber.Ctx) error {
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

	var tests []models.Test
	if err := query.Find(&tests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tests fetched successfully!", tests)
}

// GetTestByID fetches one test.
func GetTestByID(c *fiber.Ctx) error {
	testID := c.Locals("testID").(models.ObjectID)

	var test models.Test
	if err := database.Database.Db.Where("id = ?", testID).First(&test).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch test!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test fetched successfully!", test)
}

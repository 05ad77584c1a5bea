package assetController

import (
	"fjao/database"
	"fjao/middleware"
	"fjao/models"
	"fjao/utils"
	assetValidator "fjao/validators/asset"

	"github.com/gofiber/fiber/v2"
)

// UploadAsset stores metadata for an already-uploaded file. When the
// client omits the MIME type or size, the file URL is probed and the
// response headers fill the gaps.
func UploadAsset(c *fiber.Ctx) error {
	reqData := c.Locals("validatedAsset").(*assetValidator.UploadAssetRequest)

	mimeType := reqData.Type
	size := reqData.Bytes
	if mimeType == "" || size == 0 {
		probedType, probedSize := utils.ProbeFileURL(reqData.File)
		if mimeType == "" {
			mimeType = probedType
		}
		if size == 0 {
			size = probedSize
		}
	}

	asset := models.Asset{
		Name:       reqData.Name,
		File:       reqData.File,
		Type:       mimeType,
		Bytes:      size,
		StudentID:  models.ObjectID(reqData.StudentID),
		UploadedBy: reqData.UploadedBy,
		Meta:       reqData.Meta,
	}

	if err := database.Database.Db.Create(&asset).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save asset!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Asset saved", asset)
}

// GetUploadedAssets lists a student's assets, newest first.
func GetUploadedAssets(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(models.ObjectID)

	var assets []models.Asset
	if err := database.Database.Db.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&assets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assets fetched successfully!", assets)
}

// ListAllAssets lists assets across all students. ?limit= caps the
// result.
func ListAllAssets(c *fiber.Ctx) error {
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

	var assets []models.Asset
	if err := query.Find(&assets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assets fetched successfully!", assets)
}

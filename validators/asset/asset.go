package assetValidator

import (
	"fjao/middleware"
	"fjao/models"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// UploadAssetRequest is the asset metadata payload.
type UploadAssetRequest struct {
	Name       string            `json:"name"`
	File       string            `json:"file"` // public URL
	Type       string            `json:"type"`
	Bytes      int64             `json:"bytes"`
	StudentID  string            `json:"studentId"`
	UploadedBy string            `json:"uploadedBy"`
	Meta       datatypes.JSONMap `json:"meta"`
}

// UploadAsset validates the asset metadata payload.
func UploadAsset() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UploadAssetRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" || strings.TrimSpace(reqData.File) == "" || reqData.StudentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "name, file and studentId are required!", nil)
		}
		if !models.IsValidObjectID(reqData.StudentID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid studentId!", nil)
		}

		c.Locals("validatedAsset", reqData)
		return c.Next()
	}
}

// AssetsByStudent validates the studentId from query or path.
func AssetsByStudent() fiber.Handler {
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
		return c.Next()
	}
}

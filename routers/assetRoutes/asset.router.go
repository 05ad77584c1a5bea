package assetRoutes

import (
	assetController "fjao/controllers/asset"
	assetValidator "fjao/validators/asset"

	"github.com/gofiber/fiber/v2"
)

// SetupAssetRoutes registers file-asset metadata routes.
func SetupAssetRoutes(app *fiber.App) {
	app.Post("/uploadAssets", assetValidator.UploadAsset(), assetController.UploadAsset)
	app.Get("/getUploadedAssets", assetValidator.AssetsByStudent(), assetController.GetUploadedAssets)
	app.Get("/getUploadedAssets/:studentId", assetValidator.AssetsByStudent(), assetController.GetUploadedAssets)
	app.Get("/assets", assetController.ListAllAssets)
}

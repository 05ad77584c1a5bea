package authRoutes

import (
	authController "fjao/controllers/auth"
	authValidator "fjao/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers the combined login-or-signup route.
func SetupAuthRoutes(app *fiber.App) {
	app.Post("/auth", authValidator.Auth(), authController.HandleAuth)
}

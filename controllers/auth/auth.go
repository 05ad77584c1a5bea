package authController

import (
	"errors"
	"fjao/config"
	"fjao/database"
	"fjao/middleware"
	"fjao/models"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// HandleAuth is a combined login-or-signup flow: when the email exists
// the password is checked and a token issued; otherwise a new account
// is created with the supplied credentials.
func HandleAuth(c *fiber.Ctx) error {
	reqData := c.Locals("validatedAuth").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	})

	db := database.Database.Db

	var existing models.User
	err := db.Where("email = ?", reqData.Email).First(&existing).Error

	if err == nil {
		// Login flow
		if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(reqData.Password)); err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Incorrect password", nil)
		}

		token, err := middleware.GenerateJWT(existing.ID, existing.Email)
		if err != nil {
			log.Printf("Error signing token: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
			"mode":  "login",
			"token": token,
			"user": fiber.Map{
				"id":      existing.ID,
				"email":   existing.Email,
				"name":    existing.Name,
				"profile": existing.Profile,
			},
		})
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Signup flow
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user := models.User{
		Email:        reqData.Email,
		PasswordHash: string(hashedPassword),
		Name:         reqData.Name,
	}

	if err := db.Create(&user).Error; err != nil {
		// Duplicate email safety in case of a signup race
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") || strings.Contains(strings.ToLower(err.Error()), "unique") {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already in use", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Signup successful", fiber.Map{
		"mode":  "signup",
		"token": token,
		"user": fiber.Map{
			"id":      user.ID,
			"email":   user.Email,
			"name":    user.Name,
			"profile": user.Profile,
		},
	})
}

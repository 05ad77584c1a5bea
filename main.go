package main

import (
	"fjao/config"
	"fjao/database"
	applicationRoutes "fjao/routers/applicationRoutes"
	assetRoutes "fjao/routers/assetRoutes"
	authRoutes "fjao/routers/authRoutes"
	collegeRoutes "fjao/routers/collegeRoutes"
	courseRoutes "fjao/routers/courseRoutes"
	sessionRoutes "fjao/routers/sessionRoutes"
	studentRoutes "fjao/routers/studentRoutes"
	testRoutes "fjao/routers/testRoutes"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CorsOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization,X-Requested-With",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":  true,
			"env": os.Getenv("APP_ENV"),
			"ts":  time.Now().UTC().Format(time.RFC3339),
		})
	})

	authRoutes.SetupAuthRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	collegeRoutes.SetupCollegeRoutes(app)
	applicationRoutes.SetupApplicationRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	testRoutes.SetupTestRoutes(app)
	sessionRoutes.SetupSessionRoutes(app)
	assetRoutes.SetupAssetRoutes(app)

	// Close the listener and the database on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		log.Printf("%s received. Closing server...", sig)
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}

	database.Disconnect()
}

package server

import (
	"lms/config"
	authController "lms/controllers/auth"
	courseController "lms/controllers/course"
	enrollmentController "lms/controllers/enrollment"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	enrollmentRoutes "lms/routers/enrollmentRoutes"
	"lms/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// New builds the Fiber app over the given database handle. Stores and
// controllers are constructed here and injected; nothing touches a global
// connection.
func New(db *gorm.DB) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	users := store.NewUserStore(db)
	courses := store.NewCourseStore(db)
	enrollments := store.NewEnrollmentStore(db)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "Server is running"})
	})

	authRoutes.SetupAuthRoutes(app, authController.New(users))
	courseRoutes.SetupCourseRoutes(app, courseController.New(courses))
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentController.New(enrollments, courses))

	// Static frontend; unknown non-API paths fall back to the SPA entry point.
	app.Static("/", config.AppConfig.PublicDir)
	app.Get("*", func(c *fiber.Ctx) error {
		return c.SendFile(config.AppConfig.PublicDir + "/index.html")
	})

	return app
}

package courseRoutes

import (
	courseController "lms/controllers/course"
	"lms/middleware"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the course lifecycle routes. Reads are public;
// creation is gated to admins, mutation to the owning instructor or an admin.
func SetupCourseRoutes(app *fiber.App, ctl *courseController.Controller) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", ctl.List)
	// Registered before /:id so "admin" is not taken for a course ID.
	courseGroup.Get("/admin/my-courses", middleware.JWTMiddleware, ctl.MyCourses)
	courseGroup.Get("/:id", courseValidator.CourseID("id"), ctl.Get)

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireAdmin, courseValidator.CreateCourse(), ctl.Create)
	courseGroup.Put("/:id", middleware.JWTMiddleware, courseValidator.CourseID("id"), courseValidator.UpdateCourse(), ctl.Update)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, courseValidator.CourseID("id"), ctl.Delete)
}

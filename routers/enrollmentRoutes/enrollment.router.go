package enrollmentRoutes

import (
	enrollmentController "lms/controllers/enrollment"
	"lms/middleware"
	courseValidator "lms/validators/course"
	enrollmentValidator "lms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up the enrollment lifecycle routes. Every route
// requires a bearer token.
func SetupEnrollmentRoutes(app *fiber.App, ctl *enrollmentController.Controller) {
	enrollGroup := app.Group("/api/enrollments", middleware.JWTMiddleware)

	enrollGroup.Post("/", enrollmentValidator.Enroll(), ctl.Enroll)
	enrollGroup.Get("/my-enrollments", ctl.MyEnrollments)
	enrollGroup.Get("/course/:course_id", courseValidator.CourseID("course_id"), ctl.CourseRoster)
	enrollGroup.Put("/:enrollment_id", enrollmentValidator.EnrollmentID(), enrollmentValidator.UpdateStatus(), ctl.UpdateStatus)
	enrollGroup.Delete("/:enrollment_id", enrollmentValidator.EnrollmentID(), ctl.Unenroll)
}

package enrollmentValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// EnrollRequest is the parsed enrollment body.
type EnrollRequest struct {
	CourseID uint `json:"course_id"`
}

// StatusRequest is the parsed status-update body.
type StatusRequest struct {
	Status string `json:"status"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.CourseID == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "course_id is required")
		}

		c.Locals("enrollRequest", reqData)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if !models.ValidEnrollmentStatus(reqData.Status) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status")
		}

		c.Locals("statusRequest", reqData)
		return c.Next()
	}
}

// EnrollmentID validates the :enrollment_id path parameter.
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("enrollment_id"))

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enrollment ID")
		}

		c.Locals("enrollmentID", uint(id))
		return c.Next()
	}
}

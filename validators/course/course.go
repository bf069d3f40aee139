package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest is the parsed course-creation body.
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateCourseRequest is the parsed partial-update body. A nil Description
// means "leave unchanged"; an explicit empty string clears the field.
type UpdateCourseRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
		}

		c.Locals("createCourseRequest", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		c.Locals("updateCourseRequest", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter and stores it in Locals.
func CourseID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course ID")
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

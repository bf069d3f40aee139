package middleware

import "github.com/gofiber/fiber/v2"

// ErrorResponse renders the uniform error shape used across the API.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"error": message})
}

// InternalErrorResponse hides store failure detail behind a generic message.
func InternalErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}

package authValidator

import (
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterRequest is the parsed registration body, stored in Locals for the
// controller.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin student"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, registerMessage(err))
		}

		if reqData.Role == "" {
			reqData.Role = models.RoleStudent
		}

		c.Locals("registerRequest", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, requiredMessage(err))
		}

		c.Locals("loginRequest", reqData)
		return c.Next()
	}
}

// registerMessage flattens validation failures into the single human-readable
// line the API surfaces.
func registerMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Validation failed"
	}

	var msgs []string
	for _, fe := range errs {
		switch {
		case fe.Tag() == "required":
			msgs = append(msgs, strings.ToLower(fe.Field())+" is required")
		case fe.Field() == "Email":
			msgs = append(msgs, "Invalid email format")
		case fe.Field() == "Password":
			msgs = append(msgs, "Password must be at least 6 characters long")
		case fe.Field() == "Role":
			msgs = append(msgs, "Role must be admin or student")
		default:
			msgs = append(msgs, strings.ToLower(fe.Field())+" is invalid")
		}
	}
	return strings.Join(msgs, ", ")
}

func requiredMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Validation failed"
	}

	var msgs []string
	for _, fe := range errs {
		msgs = append(msgs, strings.ToLower(fe.Field())+" is required")
	}
	return strings.Join(msgs, ", ")
}

package authController

import (
	"errors"
	"log"

	"lms/config"
	"lms/middleware"
	"lms/models"
	"lms/store"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Controller handles registration, login and identity lookup.
type Controller struct {
	users *store.UserStore
}

func New(users *store.UserStore) *Controller {
	return &Controller{users: users}
}

func (ctl *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("registerRequest").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	// Fast duplicate check; the unique index backstops concurrent registrations.
	if _, err := ctl.users.FindByEmail(reqData.Email); err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Error looking up email: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	newUser := &models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     reqData.Role,
	}

	if err := ctl.users.Create(newUser); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	token, err := middleware.GenerateJWT(newUser)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   token,
		"user":    newUser,
	})
}

func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("loginRequest").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	user, err := ctl.users.FindByEmail(reqData.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("Error looking up user: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := middleware.GenerateJWT(user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Me re-reads the acting user; the account may have been removed since the
// token was issued.
func (ctl *Controller) Me(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	user, err := ctl.users.FindByID(actor.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error looking up user: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(user)
}

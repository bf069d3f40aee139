package middleware

import (
	"fmt"
	"strings"
	"time"

	"lms/config"
	"lms/models"
	"lms/policy"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const actorKey = "actor"

// GenerateJWT issues a signed bearer token for the user
func GenerateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"name": user.Name,
		"jti":  uuid.NewString(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid Authorization header format")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil || claims["role"] == nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token payload")
	}

	// JWT number claims decode as float64
	id, ok := claims["id"].(float64)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token payload")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token payload")
	}

	c.Locals(actorKey, policy.Actor{ID: uint(id), Role: role})
	return c.Next()
}

// RequireAdmin gates a route to admin actors. Must run after JWTMiddleware.
func RequireAdmin(c *fiber.Ctx) error {
	if !Actor(c).IsAdmin() {
		return ErrorResponse(c, fiber.StatusForbidden, "Admin access required")
	}
	return c.Next()
}

// Actor returns the identity stored by JWTMiddleware. The zero Actor is
// returned on routes without the middleware.
func Actor(c *fiber.Ctx) policy.Actor {
	actor, _ := c.Locals(actorKey).(policy.Actor)
	return actor
}

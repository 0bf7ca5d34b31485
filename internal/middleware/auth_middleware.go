package middleware

import (
	"errors"
	"log"
	"strings"

	"bloglist/internal/models"
	"bloglist/internal/services"

	"github.com/gofiber/fiber/v2"
)

// bearerPrefix is matched exactly: case-sensitive scheme, one space.
const bearerPrefix = "Bearer "

// AuthRequired is a Fiber middleware guarding mutating routes. It
// extracts the bearer token, verifies it, resolves the embedded user
// id to a live user record, and stores that record in the request
// context. Every failure is terminal for the request and answered with
// a distinct 401 body.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header with 'Bearer <token>' is required",
				"error":   "missing credential",
			})
		}

		claims, err := authService.VerifyToken(tokenString)
		if err != nil {
			log.Printf("Token verification failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
				"error":   err.Error(),
			})
		}

		user, err := authService.ResolveIdentity(claims)
		if err != nil {
			if errors.Is(err, services.ErrUnknownIdentity) || errors.Is(err, services.ErrMalformedToken) {
				log.Printf("Identity resolution failed: %v", err)
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Token does not resolve to a known user",
					"error":   err.Error(),
				})
			}
			log.Printf("Identity lookup error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not resolve identity",
			})
		}

		c.Locals("user", user)
		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)

		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthRequired.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}

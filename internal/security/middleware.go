package security

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"gaming-hub/internal/auth"
)

// AuthGuard validates the bearer token and exposes the caller's
// identity to downstream handlers via c.Locals("uid") and
// c.Locals("username").
func AuthGuard(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(401).JSON(fiber.Map{"error": "no token provided"})
		}

		claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("uid", claims.Subject)
		c.Locals("username", claims.Username)
		return c.Next()
	}
}

package leaderboard

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"gaming-hub/internal/cache"
)

const globalCacheKey = "leaderboard:global"

// Route order matters: /global and /user/:userId must be registered
// before /:gameId or the param route swallows them.
func RegisterRoutes(app fiber.Router, service *Service, guard fiber.Handler) {

	app.Get("/leaderboard/global", func(c *fiber.Ctx) error {
		if cached, ok := cache.Get(globalCacheKey); ok {
			return c.Type("json").SendString(cached)
		}

		entries, err := service.Global()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}

		body, err := json.Marshal(entries)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}

		cache.Set(globalCacheKey, string(body), 10*time.Second)
		return c.Type("json").Send(body)
	})

	app.Get("/leaderboard/user/:userId", guard, func(c *fiber.Ctx) error {
		standing, err := service.Standing(c.Params("userId"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}
		return c.JSON(standing)
	})

	app.Get("/leaderboard/:gameId", func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 10)

		entries, err := service.Game(c.Params("gameId"), limit)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}
		return c.JSON(entries)
	})
}

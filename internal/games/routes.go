package games

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app fiber.Router, service *Service, guard fiber.Handler) {

	app.Post("/games/score", guard, func(c *fiber.Ctx) error {
		type Req struct {
			GameID   string `json:"gameId"`
			GameName string `json:"gameName"`
			Score    int    `json:"score"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}

		rec, duplicate, err := service.Submit(
			c.Locals("uid").(string),
			c.Locals("username").(string),
			r.GameID, r.GameName, r.Score,
		)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}

		if duplicate {
			return c.JSON(fiber.Map{
				"message": "Score already saved (duplicate ignored)",
				"score":   rec,
			})
		}

		return c.JSON(fiber.Map{
			"message": "Score saved successfully",
			"score":   rec,
		})
	})

	app.Get("/games/user/:userId/history", guard, func(c *fiber.Ctx) error {
		records, err := service.History(c.Locals("uid").(string), c.Params("userId"))
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return c.Status(403).JSON(fiber.Map{"error": "unauthorized"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}
		return c.JSON(fiber.Map{"data": records})
	})

	app.Delete("/games/score/:scoreId", guard, func(c *fiber.Ctx) error {
		err := service.Delete(c.Locals("uid").(string), c.Params("scoreId"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				return c.Status(404).JSON(fiber.Map{"error": err.Error()})
			case errors.Is(err, ErrUnauthorized):
				return c.Status(403).JSON(fiber.Map{"error": "unauthorized"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}
		return c.JSON(fiber.Map{"message": "Score deleted successfully"})
	})
}

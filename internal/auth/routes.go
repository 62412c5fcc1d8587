package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app fiber.Router, service *Service, guard fiber.Handler) {

	app.Post("/auth/register", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}

		if r.Username == "" || r.Email == "" || r.Password == "" {
			return c.Status(400).JSON(fiber.Map{"error": "username, email and password are required"})
		}

		user, token, err := service.Register(r.Username, r.Email, r.Password)
		if err != nil {
			if errors.Is(err, ErrUserExists) {
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}

		return c.Status(201).JSON(fiber.Map{
			"message": "User created successfully",
			"token":   token,
			"user":    userView(user),
		})
	})

	app.Post("/auth/login", func(c *fiber.Ctx) error {
		type Req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}

		user, token, err := service.Login(r.Email, r.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}

		return c.JSON(fiber.Map{
			"message": "Login successful",
			"token":   token,
			"user":    userView(user),
		})
	})

	app.Get("/auth/me", guard, func(c *fiber.Ctx) error {
		user, err := service.Me(c.Locals("uid").(string))
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}
		return c.JSON(fiber.Map{"user": userView(user)})
	})

	app.Put("/auth/change-username", guard, func(c *fiber.Ctx) error {
		type Req struct {
			NewUsername string `json:"newUsername"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}

		if len(r.NewUsername) < 3 {
			return c.Status(400).JSON(fiber.Map{"error": "username must be at least 3 characters"})
		}

		user, token, err := service.ChangeUsername(c.Locals("uid").(string), r.NewUsername)
		if err != nil {
			switch {
			case errors.Is(err, ErrUsernameTaken):
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			case errors.Is(err, ErrUserNotFound):
				return c.Status(404).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "server error"})
		}

		return c.JSON(fiber.Map{
			"message": "Username updated successfully",
			"token":   token,
			"user":    userView(user),
		})
	})
}

func userView(u *User) fiber.Map {
	return fiber.Map{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"avatar":   u.Avatar,
	}
}

package app

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gaming-hub/internal/audit"
	"gaming-hub/internal/auth"
	"gaming-hub/internal/cache"
	"gaming-hub/internal/config"
	"gaming-hub/internal/db"
	"gaming-hub/internal/event"
	"gaming-hub/internal/games"
	"gaming-hub/internal/leaderboard"
	"gaming-hub/internal/logger"
	"gaming-hub/internal/monitoring"
	"gaming-hub/internal/security"
	"gaming-hub/internal/ws"
)

type Server struct {
	app *fiber.App
}

func NewServer() *Server {
	cfg := config.Load()
	logger.Init()
	monitoring.Init()
	cache.Init(cfg.RedisAddr)
	database := db.Init(cfg.DBPath)

	bus := event.NewBus()
	auditService := audit.New(database)
	hub := ws.NewHub()

	tokens := auth.NewTokens(cfg.JWTSecret)
	authService := auth.New(database, tokens, bus)
	gameService := games.New(database, bus)
	boardService := leaderboard.New(database)

	auth.RegisterConsumers(bus, auditService)
	games.RegisterConsumers(bus, auditService, hub)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigin,
		AllowCredentials: true,
	}))
	app.Use(func(c *fiber.Ctx) error {
		monitoring.HttpRequests.WithLabelValues(c.Method(), c.Path()).Inc()
		return c.Next()
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	guard := security.AuthGuard(tokens)
	api := app.Group("/api")
	auth.RegisterRoutes(api, authService, guard)
	games.RegisterRoutes(api, gameService, guard)
	leaderboard.RegisterRoutes(api, boardService, guard)

	app.Get("/ws/leaderboard", websocket.New(hub.Handler))

	return &Server{app: app}
}

func (s *Server) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return s.app.Listen(":" + port)
}

package api

import (
	"yojana-sahayak/internal/api/handlers"
	"yojana-sahayak/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupRouter(
	assistHandler *handlers.AssistHandler,
	schemeHandler *handlers.SchemeHandler,
	srvCfg *config.ServerConfig,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  srvCfg.ReadTimeout,
		WriteTimeout: srvCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok && e.Code != fiber.StatusInternalServerError {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			// Panics and unknown failures: generic message plus the
			// error text for diagnostics, never internals beyond that.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Internal server error",
				"message": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(fiberlogger.New())

	// Bare OPTIONS probes (no preflight headers) get an empty 200; real
	// preflights are answered by the CORS middleware above.
	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/health", assistHandler.Health)
	app.Post("/query", assistHandler.Query)
	app.Post("/transcribe", assistHandler.Transcribe)
	app.Get("/audio/:schemeId", assistHandler.Audio)
	app.Get("/scheme/:category", schemeHandler.GetByCategory)
	app.Get("/schemes/search", schemeHandler.Search)

	// Unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	})

	return app
}

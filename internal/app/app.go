package app

import (
	"fmt"
	"strings"

	_ "github.com/DIMO-Network/fb-group-relay/docs" // Import Swagger docs
	"github.com/DIMO-Network/fb-group-relay/internal/clients/graph"
	"github.com/DIMO-Network/fb-group-relay/internal/config"
	"github.com/DIMO-Network/fb-group-relay/internal/controllers/webhook"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// CreateServers builds the Graph API client and the HTTP app.
func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	if missing := settings.MissingRequired(); len(missing) > 0 {
		logger.Warn().Str("missing", strings.Join(missing, ",")).
			Msg("One or more required environment variables are not set; affected requests will be rejected")
	}

	graphClient, err := graph.New(settings, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph client: %w", err)
	}

	return CreateFiberApp(logger, graphClient, settings), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, poster webhook.GroupPoster, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Facebook group relay...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Facebook group relay!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := webhook.NewWebhookController(settings, poster)
	commandController := webhook.NewCommandController(settings, poster)
	logger.Info().Msg("Registering routes...")

	app.Get("/webhook", webhookController.VerifyWebhook)
	app.Post("/webhook", webhookController.ReceiveNotification)
	app.Post("/command", commandController.HandleCommand)

	return app
}

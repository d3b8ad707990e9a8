package main

import (
	"errors"
	"strings"

	"store-admin-backend/internal/config"
	"store-admin-backend/internal/dashboard"
	"store-admin-backend/internal/database"
	"store-admin-backend/internal/logger"
	"store-admin-backend/internal/money"
	"store-admin-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFile)
	database.Init(cfg)

	policy, err := dashboard.ParseTimezonePolicy(cfg.RevenueTimezonePolicy)
	if err != nil {
		logger.Log.Fatal(err)
	}
	fmtr, err := money.NewFormatter(cfg.CurrencyLocale, cfg.CurrencyCode)
	if err != nil {
		logger.Log.Fatalf("currency formatter: %v", err)
	}

	app := newApp(cfg, deps{
		dashboard: dashboard.NewService(dashboard.NewGormFactSource(database.DB), policy),
		formatter: fmtr,
		objects:   storage.NewHTTPStore(cfg.StorageURL, cfg.StorageBucket, cfg.StorageServiceKey),
	})

	logger.Log.WithField("port", cfg.HTTPPort).Info("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Log.Fatal(err)
	}
}

func newApp(cfg *config.Config, d deps) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 8 << 20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *fiber.Error
			if errors.As(err, &e) {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.Log.WithError(err).WithField("path", c.Path()).Error("unexpected error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Error",
			})
		},
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{Output: logger.Log.Writer()}))

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	registerRoutes(app, cfg, d)
	return app
}

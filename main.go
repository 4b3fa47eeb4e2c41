package main

import (
	"github.com/arnold/surgitrack-api/internal/config"
	"github.com/arnold/surgitrack-api/internal/database"
	"github.com/arnold/surgitrack-api/internal/handlers"
	"github.com/arnold/surgitrack-api/internal/routes"
	"github.com/arnold/surgitrack-api/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.WithError(err).Error("failed to close database")
		}
	}()

	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	// Fixture loading is opt-in, never unconditional
	if cfg.SeedFixtures {
		if _, err := services.SeedStaff(db); err != nil {
			logrus.WithError(err).Fatal("failed to seed fixtures")
		}
	}

	app := fiber.New(fiber.Config{
		AppName: "surgitrack-api",
	})
	app.Use(fiberlogger.New())

	routes.Setup(app, handlers.New(db))

	logrus.WithField("port", cfg.Port).Info("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

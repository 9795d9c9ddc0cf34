package main

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/cita-medica/config"
	"github.com/lizet96/cita-medica/database"
	"github.com/lizet96/cita-medica/handlers"
	"github.com/lizet96/cita-medica/logging"
	"github.com/lizet96/cita-medica/metrics"
	"github.com/lizet96/cita-medica/resolvers"
	"github.com/lizet96/cita-medica/routes"
)

func main() {
	logger := logging.NewLogger(config.GetEnv("LOG_LEVEL", "info"))

	// Cargar variables de entorno
	config.LoadEnv(logger)
	cfg := config.Load()
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))

	collector := metrics.NewCollector()

	// La conexión vive lo que vive el proceso
	db, err := database.Connect(context.Background(), cfg, logger, collector)
	if err != nil {
		logger.WithError(err).Fatal("No se pudo conectar a la base de datos")
	}

	schema, err := resolvers.NewSchema(db)
	if err != nil {
		logger.WithError(err).Fatal("No se pudo cargar el esquema GraphQL")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler,
		AppName:               "Cita Medica GraphQL API v1.0.0",
		DisableStartupMessage: true,
	})
	routes.SetupRoutes(app, cfg.Path, schema, collector)

	logger.Infof("Servidor listo en http://localhost:%d%s", cfg.Port, cfg.Path)
	logger.Infof("Sandbox de Apollo listo en https://studio.apollographql.com/sandbox/explorer?endpoint=http://localhost:%d%s", cfg.Port, cfg.Path)
	logger.Fatal(app.Listen(cfg.Addr()))
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/graph-gophers/graphql-go"

	"github.com/lizet96/cita-medica/handlers"
	"github.com/lizet96/cita-medica/metrics"
	"github.com/lizet96/cita-medica/middleware"
)

// SetupRoutes monta el endpoint GraphQL en path y las rutas auxiliares
func SetupRoutes(app *fiber.App, path string, schema *graphql.Schema, collector *metrics.Collector) {
	// Middleware global
	app.Use(recover.New())
	app.Use(middleware.CORS())
	app.Use(middleware.BodyFormat())

	app.Get("/health", handlers.Health)
	if collector != nil {
		app.Get("/metrics", collector.Handler())
	}

	gql := handlers.NewGraphQL(schema)
	app.Post(path, gql.Post)
	app.Get(path, gql.Get)

	app.Use(handlers.NotFound)
}

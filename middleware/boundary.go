package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS permite peticiones desde cualquier origen
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	})
}

// BodyFormat solo deja pasar cuerpos JSON o de formulario en los POST
func BodyFormat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			return c.Next()
		}
		ct := strings.ToLower(c.Get(fiber.HeaderContentType))
		if strings.HasPrefix(ct, fiber.MIMEApplicationJSON) || strings.HasPrefix(ct, fiber.MIMEApplicationForm) {
			return c.Next()
		}
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"errors": []fiber.Map{{"message": "Content-Type no soportado: use application/json o application/x-www-form-urlencoded"}},
		})
	}
}

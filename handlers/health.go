package handlers

import "github.com/gofiber/fiber/v2"

// Health responde el estado del servicio
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "API GraphQL de citas médicas",
		"version": "1.0.0",
	})
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler responde cualquier error no atendido con el sobre de errores GraphQL
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(newErrorResponse(err.Error()))
}

// NotFound se registra al final, para las rutas que no existen
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(newErrorResponse("Ruta no encontrada: " + c.Method() + " " + c.Path()))
}

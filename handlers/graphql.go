package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// GraphQL ejecuta peticiones GraphQL contra el esquema
type GraphQL struct {
	schema *graphql.Schema
}

func NewGraphQL(schema *graphql.Schema) *GraphQL {
	return &GraphQL{schema: schema}
}

// Post acepta cuerpos JSON o application/x-www-form-urlencoded
func (h *GraphQL) Post(c *fiber.Ctx) error {
	var req GraphQLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(newErrorResponse("Cuerpo de la petición inválido: " + err.Error()))
	}

	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	if !strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
		vars, err := parseVariables(c.FormValue("variables"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err.Error()))
		}
		req.Variables = vars
	}

	return h.exec(c, req)
}

// Get solo permite consultas de lectura
func (h *GraphQL) Get(c *fiber.Ctx) error {
	req := GraphQLRequest{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	vars, err := parseVariables(c.Query("variables"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err.Error()))
	}
	req.Variables = vars

	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(newErrorResponse("Falta el campo query"))
	}
	doc, perr := parser.ParseQuery(&ast.Source{Input: req.Query})
	if perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(newErrorResponse("Consulta inválida: " + perr.Error()))
	}
	op := seleccionarOperacion(doc, req.OperationName)
	if op == nil {
		return c.Status(fiber.StatusBadRequest).JSON(newErrorResponse("No se pudo determinar la operación a ejecutar"))
	}
	if op.Operation == ast.Mutation {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(newErrorResponse("Las mutaciones solo se aceptan por POST"))
	}
	return h.exec(c, req)
}

func (h *GraphQL) exec(c *fiber.Ctx, req GraphQLRequest) error {
	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(newErrorResponse("Falta el campo query"))
	}
	resp := h.schema.Exec(c.UserContext(), req.Query, req.OperationName, req.Variables)
	return c.Status(fiber.StatusOK).JSON(resp)
}

// seleccionarOperacion devuelve la operación nombrada, o la única del documento
func seleccionarOperacion(doc *ast.QueryDocument, nombre string) *ast.OperationDefinition {
	if nombre != "" {
		for _, op := range doc.Operations {
			if op.Name == nombre {
				return op
			}
		}
		return nil
	}
	if len(doc.Operations) == 1 {
		return doc.Operations[0]
	}
	return nil
}

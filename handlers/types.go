package handlers

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// GraphQLRequest es el cuerpo de una petición GraphQL, en JSON o en formulario
type GraphQLRequest struct {
	Query         string                 `json:"query" form:"query" query:"query"`
	OperationName string                 `json:"operationName" form:"operationName" query:"operationName"`
	Variables     map[string]interface{} `json:"variables" form:"-" query:"-"`
}

// ErrorMessage sigue la forma de los errores GraphQL
type ErrorMessage struct {
	Message string `json:"message"`
}

// ErrorResponse se usa cuando la petición no llega al motor GraphQL
type ErrorResponse struct {
	Errors []ErrorMessage `json:"errors"`
}

func newErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Errors: []ErrorMessage{{Message: msg}}}
}

// parseVariables decodifica las variables que llegan como texto JSON
func parseVariables(raw string) (map[string]interface{}, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var vars map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &vars); err != nil {
		return nil, errors.Wrap(err, "variables inválidas")
	}
	return vars, nil
}

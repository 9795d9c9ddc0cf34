package resolvers

import (
	_ "embed"

	"github.com/graph-gophers/graphql-go"
	"github.com/pkg/errors"

	"github.com/lizet96/cita-medica/database"
)

//go:embed type-system.graphql
var typeSystem string

// Resolver es la raíz de Query y Mutation. Cada campo ejecuta una sola
// sentencia sobre la conexión compartida.
type Resolver struct {
	db *database.DB
}

// New crea el resolver raíz sobre la conexión del proceso
func New(db *database.DB) *Resolver {
	return &Resolver{db: db}
}

// NewSchema parsea el sistema de tipos y enlaza cada campo con su resolver
func NewSchema(db *database.DB) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(typeSystem, New(db), graphql.MaxParallelism(20))
	if err != nil {
		return nil, errors.Wrap(err, "error al crear el esquema GraphQL")
	}
	return schema, nil
}

// idArgs es el argumento opcional de las consultas de lista
type idArgs struct {
	ID *int32
}

type idRequeridoArgs struct {
	ID int32
}

package resolvers

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lizet96/cita-medica/database"
	"github.com/lizet96/cita-medica/models"
)

const (
	columnasEspecialidad     = `esp_id, esp_nombre, esp_estado`
	sqlEspecialidadesActivas = `SELECT ` + columnasEspecialidad + ` FROM especialidad WHERE esp_estado = true`
	sqlEspecialidadPorID     = `SELECT ` + columnasEspecialidad + ` FROM especialidad WHERE esp_id = $1`

	sqlEspecialidadDeMedico = `SELECT e.esp_id, e.esp_nombre, e.esp_estado FROM especialidad e, medico m
		WHERE m.esp_id = e.esp_id AND m.med_id = $1`
)

func scanEspecialidad(row pgx.CollectableRow) (models.Especialidad, error) {
	var e models.Especialidad
	err := row.Scan(&e.ID, &e.Nombre, &e.Estado)
	return e, err
}

// Especialidades lista las especialidades activas, o la de ese id sin importar su estado
func (r *Resolver) Especialidades(ctx context.Context, args idArgs) (*[]*EspecialidadResolver, error) {
	if args.ID == nil {
		return especialidades(ctx, r.db, "especialidades", sqlEspecialidadesActivas)
	}
	return especialidades(ctx, r.db, "especialidades", sqlEspecialidadPorID, *args.ID)
}

func especialidades(ctx context.Context, db *database.DB, nombre, sql string, args ...any) (*[]*EspecialidadResolver, error) {
	rows, err := database.Many(ctx, db, nombre, scanEspecialidad, sql, args...)
	if err != nil {
		return nil, err
	}
	out := make([]*EspecialidadResolver, len(rows))
	for i := range rows {
		out[i] = &EspecialidadResolver{e: rows[i]}
	}
	return &out, nil
}

type EspecialidadResolver struct {
	e models.Especialidad
}

func (e *EspecialidadResolver) EspID() int32 { return e.e.ID }
func (e *EspecialidadResolver) EspNombre() string { return e.e.Nombre }
func (e *EspecialidadResolver) EspEstado() bool { return e.e.Estado }

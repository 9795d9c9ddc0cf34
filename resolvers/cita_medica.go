package resolvers

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lizet96/cita-medica/database"
	"github.com/lizet96/cita-medica/models"
)

const (
	columnasCita    = `cit_med_id, pac_id, med_id, cit_med_fecha, cit_med_agendado, cit_med_estado`
	sqlCitasActivas = `SELECT ` + columnasCita + ` FROM cita_medica WHERE cit_med_estado = true`
	sqlCitaPorID    = `SELECT ` + columnasCita + ` FROM cita_medica WHERE cit_med_id = $1`

	sqlInsertarCita = `INSERT INTO cita_medica (pac_id, med_id, cit_med_fecha, cit_med_agendado, cit_med_estado)
		VALUES ($1, $2, $3, $4, $5) RETURNING ` + columnasCita

	sqlActualizarCita = `UPDATE cita_medica SET pac_id = $1, med_id = $2, cit_med_fecha = $3
		WHERE cit_med_id = $4 RETURNING ` + columnasCita

	sqlEliminarCita     = `UPDATE cita_medica SET cit_med_estado = false WHERE cit_med_id = $1 RETURNING ` + columnasCita
	sqlCitasPorPaciente = `SELECT ` + columnasCita + ` FROM cita_medica WHERE pac_id = $1`
	sqlCitasPorMedico   = `SELECT ` + columnasCita + ` FROM cita_medica WHERE med_id = $1`
)

func scanCita(row pgx.CollectableRow) (models.CitaMedica, error) {
	var c models.CitaMedica
	err := row.Scan(&c.ID, &c.IDPaciente, &c.IDMedico, &c.Fecha, &c.Agendado, &c.Estado)
	return c, err
}

// CitasMedicas lista las citas activas, o la cita con ese id sin importar su estado
func (r *Resolver) CitasMedicas(ctx context.Context, args idArgs) (*[]*CitaMedicaResolver, error) {
	if args.ID == nil {
		return citas(ctx, r.db, "citas_medicas", sqlCitasActivas)
	}
	return citas(ctx, r.db, "citas_medicas", sqlCitaPorID, *args.ID)
}

// InsertarCitaMedica agenda la cita; la fecha la valida la base de datos
func (r *Resolver) InsertarCitaMedica(ctx context.Context, args struct{ CitaMedica models.CitaMedicaInput }) (*[]*CitaMedicaResolver, error) {
	c := args.CitaMedica
	return citas(ctx, r.db, "insertarCitaMedica", sqlInsertarCita, c.PacID, c.MedID, c.CitMedFecha, true, true)
}

func (r *Resolver) ActualizarCitaMedica(ctx context.Context, args struct {
	ID         int32
	CitaMedica models.CitaMedicaInput
}) (*[]*CitaMedicaResolver, error) {
	c := args.CitaMedica
	return citas(ctx, r.db, "actualizarCitaMedica", sqlActualizarCita, c.PacID, c.MedID, c.CitMedFecha, args.ID)
}

// EliminarCitaMedica cancela la cita de forma lógica
func (r *Resolver) EliminarCitaMedica(ctx context.Context, args idRequeridoArgs) (*[]*CitaMedicaResolver, error) {
	return citas(ctx, r.db, "eliminarCitaMedica", sqlEliminarCita, args.ID)
}

func citas(ctx context.Context, db *database.DB, nombre, sql string, args ...any) (*[]*CitaMedicaResolver, error) {
	rows, err := database.Many(ctx, db, nombre, scanCita, sql, args...)
	if err != nil {
		return nil, err
	}
	out := make([]*CitaMedicaResolver, len(rows))
	for i := range rows {
		out[i] = &CitaMedicaResolver{db: db, c: rows[i]}
	}
	return &out, nil
}

// CitaMedicaResolver resuelve los campos del tipo cita_medica
type CitaMedicaResolver struct {
	db *database.DB
	c  models.CitaMedica
}

func (c *CitaMedicaResolver) CitMedID() int32 { return c.c.ID }
func (c *CitaMedicaResolver) PacID() int32 { return c.c.IDPaciente }
func (c *CitaMedicaResolver) MedID() int32 { return c.c.IDMedico }
func (c *CitaMedicaResolver) CitMedFecha() string { return c.c.Fecha.Format(models.FormatoFecha) }
func (c *CitaMedicaResolver) CitMedAgendado() bool { return c.c.Agendado }
func (c *CitaMedicaResolver) CitMedEstado() bool { return c.c.Estado }

func (c *CitaMedicaResolver) Pacientes(ctx context.Context) (*[]*PacienteResolver, error) {
	return pacientes(ctx, c.db, "cita_medica.pacientes", sqlPacientePorID, c.c.IDPaciente)
}

func (c *CitaMedicaResolver) Medicos(ctx context.Context) (*[]*MedicoResolver, error) {
	return medicos(ctx, c.db, "cita_medica.medicos", sqlMedicoPorID, c.c.IDMedico)
}

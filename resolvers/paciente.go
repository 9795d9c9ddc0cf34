package resolvers

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lizet96/cita-medica/database"
	"github.com/lizet96/cita-medica/models"
)

const (
	columnasPaciente    = `pac_id, pac_identificacion, pac_nombre, pac_telefono, pac_email, pac_direccion, pac_estado`
	sqlPacientesActivos = `SELECT ` + columnasPaciente + ` FROM paciente WHERE pac_estado = true`
	sqlPacientePorID    = `SELECT ` + columnasPaciente + ` FROM paciente WHERE pac_id = $1`

	sqlInsertarPaciente = `INSERT INTO paciente (pac_identificacion, pac_nombre, pac_telefono, pac_email, pac_direccion, pac_estado)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING ` + columnasPaciente

	sqlActualizarPaciente = `UPDATE paciente SET pac_identificacion = $1, pac_nombre = $2, pac_telefono = $3, pac_email = $4, pac_direccion = $5
		WHERE pac_id = $6 RETURNING ` + columnasPaciente

	sqlEliminarPaciente = `UPDATE paciente SET pac_estado = false WHERE pac_id = $1 RETURNING ` + columnasPaciente
)

func scanPaciente(row pgx.CollectableRow) (models.Paciente, error) {
	var p models.Paciente
	err := row.Scan(&p.ID, &p.Identificacion, &p.Nombre, &p.Telefono, &p.Email, &p.Direccion, &p.Estado)
	return p, err
}

// Pacientes lista los pacientes activos, o el paciente con ese id sin importar su estado
func (r *Resolver) Pacientes(ctx context.Context, args idArgs) (*[]*PacienteResolver, error) {
	if args.ID == nil {
		return pacientes(ctx, r.db, "pacientes", sqlPacientesActivos)
	}
	return pacientes(ctx, r.db, "pacientes", sqlPacientePorID, *args.ID)
}

func (r *Resolver) InsertarPaciente(ctx context.Context, args struct{ Paciente models.PacienteInput }) (*[]*PacienteResolver, error) {
	p := args.Paciente
	return pacientes(ctx, r.db, "insertarPaciente", sqlInsertarPaciente,
		p.PacIdentificacion, p.PacNombre, p.PacTelefono, p.PacEmail, p.PacDireccion, true)
}

// ActualizarPaciente sobrescribe todos los campos; pac_estado no se toca
func (r *Resolver) ActualizarPaciente(ctx context.Context, args struct {
	ID       int32
	Paciente models.PacienteInput
}) (*[]*PacienteResolver, error) {
	p := args.Paciente
	return pacientes(ctx, r.db, "actualizarPaciente", sqlActualizarPaciente,
		p.PacIdentificacion, p.PacNombre, p.PacTelefono, p.PacEmail, p.PacDireccion, args.ID)
}

// EliminarPaciente es un borrado lógico
func (r *Resolver) EliminarPaciente(ctx context.Context, args idRequeridoArgs) (*[]*PacienteResolver, error) {
	return pacientes(ctx, r.db, "eliminarPaciente", sqlEliminarPaciente, args.ID)
}

func pacientes(ctx context.Context, db *database.DB, nombre, sql string, args ...any) (*[]*PacienteResolver, error) {
	rows, err := database.Many(ctx, db, nombre, scanPaciente, sql, args...)
	if err != nil {
		return nil, err
	}
	out := make([]*PacienteResolver, len(rows))
	for i := range rows {
		out[i] = &PacienteResolver{db: db, p: rows[i]}
	}
	return &out, nil
}

// PacienteResolver resuelve los campos del tipo paciente
type PacienteResolver struct {
	db *database.DB
	p  models.Paciente
}

func (p *PacienteResolver) PacID() int32 { return p.p.ID }
func (p *PacienteResolver) PacIdentificacion() string { return p.p.Identificacion }
func (p *PacienteResolver) PacNombre() string { return p.p.Nombre }
func (p *PacienteResolver) PacTelefono() *string { return p.p.Telefono }
func (p *PacienteResolver) PacEmail() *string { return p.p.Email }
func (p *PacienteResolver) PacDireccion() *string { return p.p.Direccion }
func (p *PacienteResolver) PacEstado() bool { return p.p.Estado }

// CitasMedicas devuelve todas las citas del paciente, activas o no
func (p *PacienteResolver) CitasMedicas(ctx context.Context) (*[]*CitaMedicaResolver, error) {
	return citas(ctx, p.db, "paciente.citas_medicas", sqlCitasPorPaciente, p.p.ID)
}

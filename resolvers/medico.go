package resolvers

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lizet96/cita-medica/database"
	"github.com/lizet96/cita-medica/models"
)

const (
	columnasMedico    = `med_id, esp_id, med_identificacion, med_nombre, med_telefono, med_email, med_direccion, med_estado`
	sqlMedicosActivos = `SELECT ` + columnasMedico + ` FROM medico WHERE med_estado = true`
	sqlMedicoPorID    = `SELECT ` + columnasMedico + ` FROM medico WHERE med_id = $1`

	sqlInsertarMedico = `INSERT INTO medico (esp_id, med_identificacion, med_nombre, med_telefono, med_email, med_direccion, med_estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING ` + columnasMedico

	sqlActualizarMedico = `UPDATE medico SET esp_id = $1, med_identificacion = $2, med_nombre = $3, med_telefono = $4, med_email = $5, med_direccion = $6
		WHERE med_id = $7 RETURNING ` + columnasMedico

	sqlEliminarMedico        = `UPDATE medico SET med_estado = false WHERE med_id = $1 RETURNING ` + columnasMedico
	sqlEspecialidadPorNombre = `SELECT esp_id FROM especialidad WHERE esp_nombre = $1`
)

func scanMedico(row pgx.CollectableRow) (models.Medico, error) {
	var m models.Medico
	err := row.Scan(&m.ID, &m.IDEspecialidad, &m.Identificacion, &m.Nombre, &m.Telefono, &m.Email, &m.Direccion, &m.Estado)
	return m, err
}

// Medicos lista los médicos activos, o el médico con ese id sin importar su estado
func (r *Resolver) Medicos(ctx context.Context, args idArgs) (*[]*MedicoResolver, error) {
	if args.ID == nil {
		return medicos(ctx, r.db, "medicos", sqlMedicosActivos)
	}
	return medicos(ctx, r.db, "medicos", sqlMedicoPorID, *args.ID)
}

// InsertarMedico busca primero la especialidad por nombre; si no hay
// exactamente una, no se inserta nada.
func (r *Resolver) InsertarMedico(ctx context.Context, args struct{ Medico models.MedicoInput }) (*[]*MedicoResolver, error) {
	m := args.Medico
	espID, err := r.especialidadPorNombre(ctx, m.EspNombre)
	if err != nil {
		return nil, err
	}
	return medicos(ctx, r.db, "insertarMedico", sqlInsertarMedico,
		espID, m.MedIdentificacion, m.MedNombre, m.MedTelefono, m.MedEmail, m.MedDireccion, true)
}

func (r *Resolver) ActualizarMedico(ctx context.Context, args struct {
	ID     int32
	Medico models.MedicoInput
}) (*[]*MedicoResolver, error) {
	m := args.Medico
	espID, err := r.especialidadPorNombre(ctx, m.EspNombre)
	if err != nil {
		return nil, err
	}
	return medicos(ctx, r.db, "actualizarMedico", sqlActualizarMedico,
		espID, m.MedIdentificacion, m.MedNombre, m.MedTelefono, m.MedEmail, m.MedDireccion, args.ID)
}

func (r *Resolver) EliminarMedico(ctx context.Context, args idRequeridoArgs) (*[]*MedicoResolver, error) {
	return medicos(ctx, r.db, "eliminarMedico", sqlEliminarMedico, args.ID)
}

func (r *Resolver) especialidadPorNombre(ctx context.Context, nombre string) (int32, error) {
	return database.One(ctx, r.db, "especialidadPorNombre", pgx.RowTo[int32], sqlEspecialidadPorNombre, nombre)
}

func medicos(ctx context.Context, db *database.DB, nombre, sql string, args ...any) (*[]*MedicoResolver, error) {
	rows, err := database.Many(ctx, db, nombre, scanMedico, sql, args...)
	if err != nil {
		return nil, err
	}
	out := make([]*MedicoResolver, len(rows))
	for i := range rows {
		out[i] = &MedicoResolver{db: db, m: rows[i]}
	}
	return &out, nil
}

// MedicoResolver resuelve los campos del tipo medico
type MedicoResolver struct {
	db *database.DB
	m  models.Medico
}

func (m *MedicoResolver) MedID() int32 { return m.m.ID }
func (m *MedicoResolver) EspID() int32 { return m.m.IDEspecialidad }
func (m *MedicoResolver) MedIdentificacion() string { return m.m.Identificacion }
func (m *MedicoResolver) MedNombre() string { return m.m.Nombre }
func (m *MedicoResolver) MedTelefono() *string { return m.m.Telefono }
func (m *MedicoResolver) MedEmail() *string { return m.m.Email }
func (m *MedicoResolver) MedDireccion() *string { return m.m.Direccion }
func (m *MedicoResolver) MedEstado() bool { return m.m.Estado }

// Especialidades devuelve la especialidad del médico (cero o una fila)
func (m *MedicoResolver) Especialidades(ctx context.Context) (*[]*EspecialidadResolver, error) {
	return especialidades(ctx, m.db, "medico.especialidades", sqlEspecialidadDeMedico, m.m.ID)
}

func (m *MedicoResolver) CitasMedicas(ctx context.Context) (*[]*CitaMedicaResolver, error) {
	return citas(ctx, m.db, "medico.citas_medicas", sqlCitasPorMedico, m.m.ID)
}

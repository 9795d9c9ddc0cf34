package models

// Paciente representa la tabla paciente en la base de datos
type Paciente struct {
	ID             int32   `json:"pac_id" db:"pac_id"`
	Identificacion string  `json:"pac_identificacion" db:"pac_identificacion"`
	Nombre         string  `json:"pac_nombre" db:"pac_nombre"`
	Telefono       *string `json:"pac_telefono" db:"pac_telefono"`
	Email          *string `json:"pac_email" db:"pac_email"`
	Direccion      *string `json:"pac_direccion" db:"pac_direccion"`
	Estado         bool    `json:"pac_estado" db:"pac_estado"`
}

// PacienteInput son los campos que el cliente puede escribir
type PacienteInput struct {
	PacIdentificacion string
	PacNombre         string
	PacTelefono       *string
	PacEmail          *string
	PacDireccion      *string
}

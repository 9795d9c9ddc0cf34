package models

// Medico representa la tabla medico en la base de datos
type Medico struct {
	ID             int32   `json:"med_id" db:"med_id"`
	IDEspecialidad int32   `json:"esp_id" db:"esp_id"`
	Identificacion string  `json:"med_identificacion" db:"med_identificacion"`
	Nombre         string  `json:"med_nombre" db:"med_nombre"`
	Telefono       *string `json:"med_telefono" db:"med_telefono"`
	Email          *string `json:"med_email" db:"med_email"`
	Direccion      *string `json:"med_direccion" db:"med_direccion"`
	Estado         bool    `json:"med_estado" db:"med_estado"`
}

// MedicoInput identifica la especialidad por nombre, no por id
type MedicoInput struct {
	EspNombre         string
	MedIdentificacion string
	MedNombre         string
	MedTelefono       *string
	MedEmail          *string
	MedDireccion      *string
}

package models

import (
	"time"
)

// FormatoFecha es el formato con el que viajan las fechas de las citas
const FormatoFecha = "2006-01-02"

// CitaMedica representa la tabla cita_medica en la base de datos
type CitaMedica struct {
	ID         int32     `json:"cit_med_id" db:"cit_med_id"`
	IDPaciente int32     `json:"pac_id" db:"pac_id"`
	IDMedico   int32     `json:"med_id" db:"med_id"`
	Fecha      time.Time `json:"cit_med_fecha" db:"cit_med_fecha"`
	Agendado   bool      `json:"cit_med_agendado" db:"cit_med_agendado"`
	Estado     bool      `json:"cit_med_estado" db:"cit_med_estado"`
}

// CitaMedicaInput son los campos escribibles de una cita
type CitaMedicaInput struct {
	PacID       int32
	MedID       int32
	CitMedFecha string
}

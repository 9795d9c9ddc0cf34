package models

// Especialidad representa la tabla especialidad en la base de datos
type Especialidad struct {
	ID     int32  `json:"esp_id" db:"esp_id"`
	Nombre string `json:"esp_nombre" db:"esp_nombre"`
	Estado bool   `json:"esp_estado" db:"esp_estado"`
}
